package matchers

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/types"
	"golang.org/x/net/html"
)

// HaveElementWithID succeeds when the rendered document contains an element
// carrying the given id.
func HaveElementWithID(id string) types.GomegaMatcher {
	return WithTransform(func(actual interface{}) (bool, error) {
		root, err := parse(actual)
		if err != nil {
			return false, err
		}
		return FindByID(root, id) != nil, nil
	}, BeTrue())
}

// HaveElementText matches the text content of the element with the given id.
func HaveElementText(id string, text types.GomegaMatcher) types.GomegaMatcher {
	return WithTransform(func(actual interface{}) (string, error) {
		n, err := element(actual, id)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(TextOf(n)), nil
	}, text)
}

// HaveElementAttribute matches an attribute of the element with the given id.
func HaveElementAttribute(id, attr string, value types.GomegaMatcher) types.GomegaMatcher {
	return WithTransform(func(actual interface{}) (string, error) {
		n, err := element(actual, id)
		if err != nil {
			return "", err
		}
		v, ok := Attr(n, attr)
		if !ok {
			return "", fmt.Errorf("element #%s has no %s attribute", id, attr)
		}
		return v, nil
	}, value)
}

func element(actual interface{}, id string) (*html.Node, error) {
	root, err := parse(actual)
	if err != nil {
		return nil, err
	}
	n := FindByID(root, id)
	if n == nil {
		return nil, fmt.Errorf("no element with id %q", id)
	}
	return n, nil
}

func parse(actual interface{}) (*html.Node, error) {
	var r io.Reader
	switch a := actual.(type) {
	case string:
		r = strings.NewReader(a)
	case []byte:
		r = bytes.NewReader(a)
	case io.Reader:
		r = a
	default:
		return nil, fmt.Errorf("expected an HTML document, got %T", actual)
	}
	return html.Parse(r)
}

func FindByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		if v, ok := Attr(n, "id"); ok && v == id {
			return n
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := FindByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func Attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func TextOf(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(TextOf(c))
	}
	return b.String()
}
