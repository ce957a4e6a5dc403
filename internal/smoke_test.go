package main

import (
	"os"
	"testing"

	sdkgen "github.com/blimu-dev/packages-sub001"
)

func TestValidateSpec_NoSpec(t *testing.T) {
	// Smoke: ensure binary builds and ValidateSpec errors on missing file
	if _, err := os.Stat("/no/such/file.yaml"); err == nil {
		t.Fatal("expected no file")
	}
	if err := sdkgen.ValidateSpec("/no/such/file.yaml"); err == nil {
		t.Fatal("expected error")
	}
}

func TestBuildIR_NoSpec(t *testing.T) {
	if _, err := sdkgen.BuildIR("/no/such/file.yaml"); err == nil {
		t.Fatal("expected error")
	}
}
