package github

import (
	"encoding/base64"
	"strings"

	apierrors "github.com/matzehuels/gitscraper/pkg/errors"
)

// DecodeContent returns the file bytes carried by a contents response from
// [Client.GetFileContent]. GitHub sends them base64-encoded with embedded
// line breaks. Directory listings and files over 1 MB carry no content.
func DecodeContent(file Object) ([]byte, error) {
	if t, _ := file["type"].(string); t != "" && t != "file" {
		return nil, apierrors.New(apierrors.ErrCodeInvalidFormat, "contents entry is a %s, not a file", t)
	}
	content, ok := file["content"].(string)
	if !ok {
		return nil, apierrors.New(apierrors.ErrCodeInvalidFormat, "contents entry has no content")
	}
	if enc, _ := file["encoding"].(string); enc != "" && enc != "base64" {
		return nil, apierrors.New(apierrors.ErrCodeInvalidFormat, "unsupported content encoding %q", enc)
	}

	data, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(content, "\n", ""))
	if err != nil {
		return nil, apierrors.Wrap(apierrors.ErrCodeInvalidFormat, err, "decode content")
	}
	return data, nil
}
