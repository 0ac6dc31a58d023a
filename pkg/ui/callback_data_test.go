package ui

import (
	"strings"
	"testing"
)

func TestParseCallbackData(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Action
		wantErr bool
	}{
		{
			name:  "remove",
			input: "w:rm:12",
			want:  Action{Kind: KindRemove, WordID: 12},
		},
		{
			name:  "keep",
			input: "w:keep:12",
			want:  Action{Kind: KindKeep, WordID: 12},
		},
		{
			name:  "confirm",
			input: "w:yes:7",
			want:  Action{Kind: KindConfirm, WordID: 7},
		},
		{
			name:  "decline",
			input: "w:no:7",
			want:  Action{Kind: KindDecline, WordID: 7},
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "settings prefix",
			input:   "s:home",
			wantErr: true,
		},
		{
			name:    "missing word",
			input:   "w:rm",
			wantErr: true,
		},
		{
			name:    "zero word",
			input:   "w:rm:0",
			wantErr: true,
		},
		{
			name:    "signed word",
			input:   "w:rm:-3",
			wantErr: true,
		},
		{
			name:    "unknown kind",
			input:   "w:maybe:3",
			wantErr: true,
		},
		{
			name:    "too many parts",
			input:   "w:rm:3:4",
			wantErr: true,
		},
		{
			name:    "too long",
			input:   "w:rm:" + strings.Repeat("1", MaxCallbackDataLen),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCallbackData(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestBuildCallbacksRoundTrip(t *testing.T) {
	builders := map[Kind]func(uint) (string, error){
		KindRemove:  BuildRemoveCallback,
		KindKeep:    BuildKeepCallback,
		KindConfirm: BuildConfirmDeleteCallback,
		KindDecline: BuildDeclineDeleteCallback,
	}
	for kind, build := range builders {
		data, err := build(4294967295)
		if err != nil {
			t.Fatalf("%s: unexpected build error: %v", kind, err)
		}
		if len(data) > MaxCallbackDataLen {
			t.Fatalf("%s: callback data too long: %q", kind, data)
		}
		action, err := ParseCallbackData(data)
		if err != nil {
			t.Fatalf("%s: unexpected parse error: %v", kind, err)
		}
		if action.Kind != kind || action.WordID != 4294967295 {
			t.Fatalf("%s: unexpected action %+v", kind, action)
		}
	}

	if _, err := BuildRemoveCallback(0); err == nil {
		t.Fatalf("expected zero word id to be rejected")
	}
}

func TestActionIsChoice(t *testing.T) {
	if !(Action{Kind: KindKeep}).IsChoice() || (Action{Kind: KindConfirm}).IsChoice() {
		t.Fatalf("unexpected choice classification")
	}
}
