package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseDecode,
				Kind:   KindOverlongEncoding,
				Offset: 3,
				Detail: "non-minimal encoding of U+0000",
			},
			contains: []string{"[decode]", "overlong_encoding", "at unit 3", "U+0000"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase:  PhaseEncode,
				Kind:   KindOutputTooSmall,
				Offset: -1,
			},
			contains: []string{"[encode]", "output_too_small"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseTransform,
				Kind:   KindInvalidInput,
				Detail: "decode failed",
				Offset: -1,
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[transform]", "invalid_input", "decode failed", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(PhaseTransform, KindInvalidInput, cause, "wrapped")

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}
}

func TestError_Is(t *testing.T) {
	tests := []struct {
		name   string
		err    *Error
		target error
		want   bool
	}{
		{
			name:   "same phase and kind",
			err:    InvalidInput(PhaseDecode, "bad lead byte"),
			target: &Error{Phase: PhaseDecode, Kind: KindInvalidInput},
			want:   true,
		},
		{
			name:   "different kind",
			err:    InvalidInput(PhaseDecode, "bad lead byte"),
			target: &Error{Phase: PhaseDecode, Kind: KindOutputTooSmall},
			want:   false,
		},
		{
			name:   "different phase",
			err:    InvalidInput(PhaseDecode, "bad lead byte"),
			target: &Error{Phase: PhaseEncode, Kind: KindInvalidInput},
			want:   false,
		},
		{
			name:   "sentinel matches any phase",
			err:    IncompleteSequence(PhaseMeasure, 12),
			target: &Error{Kind: KindIncompleteSequence},
			want:   true,
		},
		{
			name:   "not a structured error",
			err:    InvalidInput(PhaseDecode, "x"),
			target: errors.New("plain"),
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.want {
				t.Errorf("errors.Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSentinels(t *testing.T) {
	decodeFail := SurrogateInStream(PhaseDecode, 0, 0xDC00)
	if !errors.Is(decodeFail, &Error{Kind: KindSurrogateInStream}) {
		t.Error("surrogate error should match its kind")
	}

	full := OutputTooSmall(PhaseEncode, 2)
	if !errors.Is(full, ErrOutputTooSmall) {
		t.Error("OutputTooSmall should match ErrOutputTooSmall")
	}
	if errors.Is(full, ErrInvalidInput) {
		t.Error("OutputTooSmall should not match ErrInvalidInput")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("inner")
	err := New(PhaseDecode, KindOutOfRange).
		Offset(9).
		Value(uint32(0x110000)).
		Detail("value 0x%X exceeds U+10FFFF", 0x110000).
		Cause(cause).
		Build()

	if err.Phase != PhaseDecode || err.Kind != KindOutOfRange {
		t.Errorf("unexpected phase/kind: %v/%v", err.Phase, err.Kind)
	}
	if err.Offset != 9 {
		t.Errorf("Offset = %d, want 9", err.Offset)
	}
	if err.Value != uint32(0x110000) {
		t.Errorf("Value = %v", err.Value)
	}
	if err.Cause != cause {
		t.Error("Cause not preserved")
	}
	if !strings.Contains(err.Error(), "0x110000") {
		t.Errorf("detail not formatted: %q", err.Error())
	}
}
