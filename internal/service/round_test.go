package service

import (
	"os"
	"testing"
	"time"
)

func TestJoinSameNameReturnsSameTeam(t *testing.T) {
	env := newTestEnv(t)

	first := env.join(t, "Falcons")
	second := env.join(t, "Falcons")
	if first != second {
		t.Fatalf("expected same teamId for repeated join, got %d and %d", first, second)
	}

	other := env.join(t, "Otters")
	if other == first {
		t.Fatalf("expected distinct teamId for a different name, got %d twice", other)
	}
}

func TestJoinEmptyNameRejected(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.services.Round.Join("   ")
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestTimerLifecycle(t *testing.T) {
	env := newTestEnv(t)
	round := env.services.Round

	status, err := round.TimerStatus()
	if err != nil {
		t.Fatalf("timer status: %v", err)
	}
	if status.Running || status.RemainingSeconds != 0 {
		t.Fatalf("expected stopped timer before start, got %+v", status)
	}

	if err := round.StartTimer(0); err != nil {
		t.Fatalf("start timer: %v", err)
	}

	status, _ = round.TimerStatus()
	if !status.Running || status.RemainingSeconds != 75*60 {
		t.Fatalf("expected full default round, got %+v", status)
	}

	env.clock.Advance(10 * time.Minute)
	later, _ := round.TimerStatus()
	if !later.Running || later.RemainingSeconds >= status.RemainingSeconds {
		t.Fatalf("expected remaining seconds to decrease, got %+v then %+v", status, later)
	}

	env.clock.Advance(66 * time.Minute)
	expired, _ := round.TimerStatus()
	if expired.Running || expired.RemainingSeconds != 0 {
		t.Fatalf("expected expired timer, got %+v", expired)
	}
}

func TestTimerRestartOverwrites(t *testing.T) {
	env := newTestEnv(t)
	round := env.services.Round

	if err := round.StartTimer(10); err != nil {
		t.Fatalf("start timer: %v", err)
	}
	env.clock.Advance(5 * time.Minute)

	if err := round.StartTimer(30); err != nil {
		t.Fatalf("restart timer: %v", err)
	}
	status, _ := round.TimerStatus()
	if status.RemainingSeconds != 30*60 {
		t.Fatalf("expected restart to overwrite the window, got %+v", status)
	}
}

func TestStopTimer(t *testing.T) {
	env := newTestEnv(t)
	round := env.services.Round

	if err := round.StartTimer(75); err != nil {
		t.Fatalf("start timer: %v", err)
	}
	if err := round.StopTimer(); err != nil {
		t.Fatalf("stop timer: %v", err)
	}

	status, _ := round.TimerStatus()
	if status.Running || status.RemainingSeconds != 0 {
		t.Fatalf("expected stopped timer, got %+v", status)
	}
}

func TestResetRoundClearsEverythingButMissions(t *testing.T) {
	env := newTestEnv(t)

	teamID := env.join(t, "Falcons")
	env.submit(t, teamID, 3)
	if _, err := env.services.Messaging.PostTeamMessage(teamID, "hello"); err != nil {
		t.Fatalf("post message: %v", err)
	}
	broadcastID, err := env.services.Messaging.PostBroadcast("meet at the fountain")
	if err != nil {
		t.Fatalf("post broadcast: %v", err)
	}
	if err := env.services.Messaging.AckBroadcast(teamID, broadcastID); err != nil {
		t.Fatalf("ack broadcast: %v", err)
	}
	if err := env.services.Round.StartTimer(75); err != nil {
		t.Fatalf("start timer: %v", err)
	}

	if err := env.services.Round.ResetRound(); err != nil {
		t.Fatalf("reset round: %v", err)
	}

	teams, err := env.services.Round.Teams()
	if err != nil {
		t.Fatalf("teams after reset: %v", err)
	}
	if len(teams) != 0 {
		t.Fatalf("expected no teams after reset, got %d", len(teams))
	}

	submissions, err := env.services.Submission.ListAll()
	if err != nil {
		t.Fatalf("submissions after reset: %v", err)
	}
	if len(submissions) != 0 {
		t.Fatalf("expected no submissions after reset, got %d", len(submissions))
	}

	status, _ := env.services.Round.TimerStatus()
	if status.Running {
		t.Fatalf("expected stopped timer after reset, got %+v", status)
	}

	missions, err := env.services.Submission.Missions()
	if err != nil {
		t.Fatalf("missions after reset: %v", err)
	}
	if len(missions) != 21 {
		t.Fatalf("expected the full catalog to survive the reset, got %d missions", len(missions))
	}

	entries, err := os.ReadDir(env.blobs.Dir())
	if err != nil {
		t.Fatalf("read upload dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected stored artifacts to be deleted, found %d files", len(entries))
	}
}
