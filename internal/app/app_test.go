package app

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/adityab/healthpredict/internal/auth"
	"github.com/adityab/healthpredict/internal/history"
	"github.com/adityab/healthpredict/internal/predict"
	"github.com/adityab/healthpredict/internal/router"
	"github.com/adityab/healthpredict/internal/store"
)

// fakeHistoryRepo implements store.HistoryRepo for testing.
type fakeHistoryRepo struct {
	records []store.HistoryRecord
}

func (f *fakeHistoryRepo) Insert(_ context.Context, rec *store.HistoryRecord) error {
	f.records = append(f.records, *rec)
	return nil
}

func (f *fakeHistoryRepo) ListByUser(_ context.Context, userID string) ([]store.HistoryRecord, error) {
	var out []store.HistoryRecord
	for _, r := range f.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func testModel(t *testing.T) (AppModel, *auth.MockProvider) {
	t.Helper()

	provider := auth.NewMockProvider()
	session := auth.NewStore(provider)
	t.Cleanup(session.Close)

	workflow := predict.NewWorkflow(predict.NewMockClient(), nil, nil)
	svc := history.NewService(&fakeHistoryRepo{})

	m := newAppModel(session, workflow, svc)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(AppModel), provider
}

func applyMsg(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(AppModel)
}

func TestHistoryPanelHiddenWhenIdentityClearedInPlace(t *testing.T) {
	m, provider := testModel(t)
	provider.Push(&auth.Identity{ID: "u1", Email: "a@b.com"})

	m = applyMsg(t, m, router.NavigateMsg{Action: router.ActionNavigateHistory})
	if m.state != router.StateHistory {
		t.Fatalf("state = %v, want %v", m.state, router.StateHistory)
	}
	if !strings.Contains(m.render(), "Loading history") {
		t.Fatal("expected history panel while signed in")
	}

	// Identity vanishes without the model processing any message, e.g.
	// a provider-side sign-out landing between two renders.
	provider.Push(nil)

	out := m.render()
	if !strings.Contains(out, "Signed out. History is unavailable.") {
		t.Error("expected the signed-out notice")
	}
	if strings.Contains(out, "Loading history") || strings.Contains(out, "Assessment History") {
		t.Error("history panel rendered without an identity")
	}
}

func TestHistoryNavigationIsNoOpWhenSignedOut(t *testing.T) {
	m, _ := testModel(t)

	m = applyMsg(t, m, router.NavigateMsg{Action: router.ActionNavigateHistory})
	if m.state != router.StateHome {
		t.Errorf("state = %v, want %v", m.state, router.StateHome)
	}
}

func TestIdentityClearedMessageReturnsHome(t *testing.T) {
	m, provider := testModel(t)
	provider.Push(&auth.Identity{ID: "u1", Email: "a@b.com"})
	m = applyMsg(t, m, router.NavigateMsg{Action: router.ActionNavigateHistory})

	m = applyMsg(t, m, identityChangedMsg{ident: nil})
	if m.state != router.StateHome {
		t.Errorf("state = %v, want %v", m.state, router.StateHome)
	}
}
