package quotes

import "testing"

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, next Status }{
		{StatusDraft, StatusSent},
		{StatusDraft, StatusExpired},
		{StatusSent, StatusAccepted},
		{StatusSent, StatusRejected},
		{StatusSent, StatusExpired},
	}
	for _, c := range allowed {
		if !CanTransition(c.from, c.next) {
			t.Errorf("%s -> %s should be allowed", c.from, c.next)
		}
	}

	denied := []struct{ from, next Status }{
		{StatusDraft, StatusAccepted},
		{StatusAccepted, StatusSent},
		{StatusRejected, StatusAccepted},
		{StatusExpired, StatusSent},
		{StatusSent, StatusDraft},
	}
	for _, c := range denied {
		if CanTransition(c.from, c.next) {
			t.Errorf("%s -> %s should be denied", c.from, c.next)
		}
	}
}
