package parser

import (
	"errors"
	"strings"

	"github.com/advancedlogic/GoOse/pkg/goose"
	"github.com/go-shiori/go-readability"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// ExtractText pulls the readable plain-text content out of an HTML
// document. Extractors are tried in order of output quality: trafilatura,
// then readability, then GoOse. The first non-empty result wins.
func ExtractText(htmlStr string) (string, error) {
	if text, err := extractWithTrafilatura(htmlStr); err == nil && strings.TrimSpace(text) != "" {
		return text, nil
	}
	if text, err := extractWithReadability(htmlStr); err == nil && strings.TrimSpace(text) != "" {
		return text, nil
	}
	if text, err := extractWithGoose(htmlStr); err == nil && strings.TrimSpace(text) != "" {
		return text, nil
	}
	return "", errors.New("no extractor produced text content")
}

func extractWithTrafilatura(htmlStr string) (string, error) {
	article, err := trafilatura.Extract(strings.NewReader(htmlStr), trafilatura.Options{})
	if err != nil {
		return "", err
	}
	return article.ContentText, nil
}

func extractWithReadability(htmlStr string) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return "", err
	}

	article, err := readability.FromDocument(doc, nil)
	if err != nil {
		return "", err
	}
	return article.TextContent, nil
}

func extractWithGoose(htmlStr string) (string, error) {
	g := goose.New()
	article, err := g.ExtractFromRawHTML(htmlStr, "")
	if err != nil {
		return "", err
	}
	return article.CleanedText, nil
}
