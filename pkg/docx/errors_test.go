package docx

import (
	"errors"
	"fmt"
	"testing"
)

func TestDocxError(t *testing.T) {
	cause := errors.New("permission denied")

	tests := []struct {
		name    string
		err     *DocxError
		wantMsg string
	}{
		{
			name:    "path and cause",
			err:     &DocxError{Kind: KindDestination, Operation: "create", Path: "out.docx", Cause: cause},
			wantMsg: "docx destination error during create of 'out.docx': permission denied",
		},
		{
			name:    "path only",
			err:     &DocxError{Kind: KindDestination, Operation: "close", Path: "out.docx"},
			wantMsg: "docx destination error during close of 'out.docx'",
		},
		{
			name:    "cause only",
			err:     &DocxError{Kind: KindSerialization, Operation: "write word/document.xml", Cause: cause},
			wantMsg: "docx serialization error during write word/document.xml: permission denied",
		},
		{
			name:    "operation only",
			err:     &DocxError{Kind: KindSerialization, Operation: "finish container"},
			wantMsg: "docx serialization error during finish container",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestDocxErrorClassification(t *testing.T) {
	cause := errors.New("disk full")
	dest := NewDocxError(KindDestination, "write", "a.docx", cause)
	ser := NewDocxError(KindSerialization, "finish container", "", cause)
	wrapped := fmt.Errorf("saving report: %w", dest)

	if !IsDocxError(dest) || !IsDocxError(ser) || !IsDocxError(wrapped) {
		t.Error("IsDocxError() = false for a docx error")
	}
	if IsDocxError(cause) {
		t.Error("IsDocxError() = true for a plain error")
	}
	if !IsDestinationError(dest) || !IsDestinationError(wrapped) {
		t.Error("IsDestinationError() = false for a destination error")
	}
	if IsDestinationError(ser) {
		t.Error("IsDestinationError() = true for a serialization error")
	}
	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is() did not reach the cause")
	}
	if got := ErrorKind(42).String(); got != "unknown" {
		t.Errorf("String() = %q, want %q", got, "unknown")
	}
}
