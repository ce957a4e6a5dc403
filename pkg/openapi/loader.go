package openapi

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/getkin/kin-openapi/openapi3"
)

// LoadDocument loads an OpenAPI document from a local file path or an HTTP(S) URL
func LoadDocument(input string) (*openapi3.T, error) {
	loader := &openapi3.Loader{IsExternalRefsAllowed: true}
	return LoadDocumentWithLoader(loader, input)
}

// LoadDocumentWithLoader loads an OpenAPI document using a custom loader
func LoadDocumentWithLoader(loader *openapi3.Loader, input string) (*openapi3.T, error) {
	// Try to parse as URL; if it looks like http(s), fetch via URL
	if u, err := url.Parse(input); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return loader.LoadFromURI(u)
	}
	// Fallback to reading from filesystem path
	return loader.LoadFromFile(input)
}

// LoadDocumentData parses an OpenAPI document from in-memory bytes. The
// override engine edits the raw document before parsing, so the pipeline
// loads through this rather than straight from disk.
func LoadDocumentData(data []byte) (*openapi3.T, error) {
	loader := &openapi3.Loader{IsExternalRefsAllowed: true}
	return loader.LoadFromData(data)
}

// ReadSpec returns the raw bytes of a spec from a file path or HTTP(S) URL.
func ReadSpec(input string) ([]byte, error) {
	if u, err := url.Parse(input); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		resp, err := http.Get(input)
		if err != nil {
			return nil, fmt.Errorf("fetching spec %s: %w", input, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetching spec %s: unexpected status %s", input, resp.Status)
		}
		return io.ReadAll(resp.Body)
	}
	data, err := os.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("reading spec: %w", err)
	}
	return data, nil
}

// ValidateDocument validates an OpenAPI document
func ValidateDocument(input string) error {
	loader := &openapi3.Loader{IsExternalRefsAllowed: true}
	doc, err := LoadDocumentWithLoader(loader, input)
	if err != nil {
		return err
	}
	if err := CheckVersion(doc); err != nil {
		return err
	}
	return doc.Validate(loader.Context)
}
