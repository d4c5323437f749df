package input

import (
	"testing"
)

func TestMapToIntent_Movement(t *testing.T) {
	tests := []struct {
		code string
		want Action
	}{
		{"k", ActionMoveUp},
		{"arrow_up", ActionMoveUp},
		{"j", ActionMoveDown},
		{"arrow_down", ActionMoveDown},
		{"h", ActionMoveLeft},
		{"arrow_left", ActionMoveLeft},
		{"l", ActionMoveRight},
		{"arrow_right", ActionMoveRight},
		{"b", ActionUndo},
		{"r", ActionRestart},
		{"q", ActionQuit},
		{"ctrl_c", ActionQuit},
	}

	for _, tc := range tests {
		if got := MapToIntent(tc.code).Action; got != tc.want {
			t.Errorf("MapToIntent(%q) = %v, want %v", tc.code, ActionName(got), ActionName(tc.want))
		}
	}
}

func TestMapToIntent_UnknownCode(t *testing.T) {
	if got := MapToIntent("zzz").Action; got != ActionNone {
		t.Errorf("MapToIntent(unknown) = %v, want ActionNone", ActionName(got))
	}
}
