package service

import (
	"fmt"
	"testing"
)

func TestChatInterleavesBothDirections(t *testing.T) {
	env := newTestEnv(t)
	teamID := env.join(t, "Falcons")
	chat := env.services.Messaging

	if _, err := chat.PostTeamMessage(teamID, "where is mission 4?"); err != nil {
		t.Fatalf("team message: %v", err)
	}
	if _, err := chat.PostGMMessage(teamID, "at the river"); err != nil {
		t.Fatalf("gm message: %v", err)
	}
	if _, err := chat.PostTeamMessage(teamID, "thanks"); err != nil {
		t.Fatalf("team message: %v", err)
	}

	messages, err := chat.Messages(teamID)
	if err != nil {
		t.Fatalf("messages: %v", err)
	}
	if len(messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(messages))
	}
	if messages[0].FromGM || !messages[1].FromGM || messages[2].FromGM {
		t.Fatalf("expected team/gm/team order, got %+v", messages)
	}
	for i := 1; i < len(messages); i++ {
		if messages[i].ID <= messages[i-1].ID {
			t.Fatalf("expected ascending ids, got %d after %d", messages[i].ID, messages[i-1].ID)
		}
	}
}

func TestChatHistoryCapKeepsNewest(t *testing.T) {
	env := newTestEnv(t)
	teamID := env.join(t, "Falcons")
	chat := env.services.Messaging

	for i := 0; i < chatHistoryLimit+10; i++ {
		if _, err := chat.PostTeamMessage(teamID, fmt.Sprintf("msg %d", i)); err != nil {
			t.Fatalf("post %d: %v", i, err)
		}
	}

	messages, err := chat.Messages(teamID)
	if err != nil {
		t.Fatalf("messages: %v", err)
	}
	if len(messages) != chatHistoryLimit {
		t.Fatalf("expected history capped at %d, got %d", chatHistoryLimit, len(messages))
	}
	if messages[len(messages)-1].Text != fmt.Sprintf("msg %d", chatHistoryLimit+9) {
		t.Fatalf("expected the newest message to survive the cap, got %q", messages[len(messages)-1].Text)
	}
	if messages[0].Text != "msg 10" {
		t.Fatalf("expected the oldest surviving message to be msg 10, got %q", messages[0].Text)
	}
}

func TestResetTeamChatLeavesOtherTeams(t *testing.T) {
	env := newTestEnv(t)
	falcons := env.join(t, "Falcons")
	otters := env.join(t, "Otters")
	chat := env.services.Messaging

	if _, err := chat.PostTeamMessage(falcons, "hi"); err != nil {
		t.Fatalf("post: %v", err)
	}
	if _, err := chat.PostTeamMessage(otters, "hello"); err != nil {
		t.Fatalf("post: %v", err)
	}

	if err := chat.ResetTeamChat(falcons); err != nil {
		t.Fatalf("reset chat: %v", err)
	}

	gone, _ := chat.Messages(falcons)
	if len(gone) != 0 {
		t.Fatalf("expected Falcons chat wiped, got %d messages", len(gone))
	}
	kept, _ := chat.Messages(otters)
	if len(kept) != 1 {
		t.Fatalf("expected Otters chat untouched, got %d messages", len(kept))
	}
}

func TestMessageValidation(t *testing.T) {
	env := newTestEnv(t)
	teamID := env.join(t, "Falcons")
	chat := env.services.Messaging

	if _, err := chat.PostTeamMessage(0, "hi"); !IsValidation(err) {
		t.Fatalf("expected validation error for missing team, got %v", err)
	}
	if _, err := chat.PostTeamMessage(teamID, "  "); !IsValidation(err) {
		t.Fatalf("expected validation error for empty text, got %v", err)
	}
	if _, err := chat.PostBroadcast(""); !IsValidation(err) {
		t.Fatalf("expected validation error for empty broadcast, got %v", err)
	}
}

func TestBroadcastAckFlow(t *testing.T) {
	env := newTestEnv(t)
	falcons := env.join(t, "Falcons")
	otters := env.join(t, "Otters")
	chat := env.services.Messaging

	first, err := chat.PostBroadcast("first announcement")
	if err != nil {
		t.Fatalf("broadcast: %v", err)
	}
	second, err := chat.PostBroadcast("second announcement")
	if err != nil {
		t.Fatalf("broadcast: %v", err)
	}

	pending, err := chat.PendingBroadcasts(falcons)
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if len(pending) != 2 || pending[0].ID != first || pending[1].ID != second {
		t.Fatalf("expected both broadcasts oldest-first, got %+v", pending)
	}

	if err := chat.AckBroadcast(falcons, first); err != nil {
		t.Fatalf("ack: %v", err)
	}
	// Acknowledging twice is a no-op, not an error.
	if err := chat.AckBroadcast(falcons, first); err != nil {
		t.Fatalf("second ack: %v", err)
	}

	pending, _ = chat.PendingBroadcasts(falcons)
	if len(pending) != 1 || pending[0].ID != second {
		t.Fatalf("expected only the unacked broadcast, got %+v", pending)
	}

	// Receipts are per team; the other team still sees everything.
	otherPending, _ := chat.PendingBroadcasts(otters)
	if len(otherPending) != 2 {
		t.Fatalf("expected Otters to still see both broadcasts, got %d", len(otherPending))
	}
}
