package logic

import (
	"testing"
	"time"

	"github.com/vlrstats/vct-collector/internal/vlr"
)

func date(t *testing.T, s string) *vlr.Date {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return &vlr.Date{Time: parsed}
}

func TestSelectEvents(t *testing.T) {
	tests := []struct {
		name         string
		events       []vlr.Event
		year         int
		wantIDs      []int
		wantFellBack bool
	}{
		{
			name: "start year matches",
			events: []vlr.Event{
				{ID: 1, StartDate: date(t, "2024-03-01"), EndDate: date(t, "2024-03-15")},
			},
			year:    2024,
			wantIDs: []int{1},
		},
		{
			name: "end year matches across boundary",
			events: []vlr.Event{
				{ID: 2, StartDate: date(t, "2023-12-20"), EndDate: date(t, "2024-01-02")},
			},
			year:    2024,
			wantIDs: []int{2},
		},
		{
			name: "wrong year excluded",
			events: []vlr.Event{
				{ID: 3, StartDate: date(t, "2023-05-01"), EndDate: date(t, "2023-05-20")},
				{ID: 4, StartDate: date(t, "2024-06-01"), EndDate: date(t, "2024-06-20")},
			},
			year:    2024,
			wantIDs: []int{4},
		},
		{
			name: "undated event always kept",
			events: []vlr.Event{
				{ID: 5},
				{ID: 6, StartDate: date(t, "2022-01-01"), EndDate: date(t, "2022-01-10")},
			},
			year:    2024,
			wantIDs: []int{5},
		},
		{
			name: "only start date present and matching",
			events: []vlr.Event{
				{ID: 7, StartDate: date(t, "2024-09-01")},
			},
			year:    2024,
			wantIDs: []int{7},
		},
		{
			name: "only end date present and not matching",
			events: []vlr.Event{
				{ID: 8, EndDate: date(t, "2023-09-01")},
				{ID: 9, StartDate: date(t, "2024-02-01"), EndDate: date(t, "2024-02-10")},
			},
			year:    2024,
			wantIDs: []int{9},
		},
		{
			name: "filter empties list falls back to original",
			events: []vlr.Event{
				{ID: 10, StartDate: date(t, "2021-01-01"), EndDate: date(t, "2021-01-10")},
				{ID: 11, StartDate: date(t, "2022-01-01"), EndDate: date(t, "2022-01-10")},
			},
			year:         2024,
			wantIDs:      []int{10, 11},
			wantFellBack: true,
		},
		{
			name:    "empty input stays empty",
			events:  nil,
			year:    2024,
			wantIDs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, fellBack := SelectEvents(tt.events, tt.year)
			if fellBack != tt.wantFellBack {
				t.Errorf("SelectEvents() fellBack = %v, want %v", fellBack, tt.wantFellBack)
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("SelectEvents() returned %d events, want %d", len(got), len(tt.wantIDs))
			}
			for i, ev := range got {
				if ev.ID != tt.wantIDs[i] {
					t.Errorf("event[%d].ID = %d, want %d", i, ev.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestSelectEventsPreservesOrder(t *testing.T) {
	events := []vlr.Event{
		{ID: 3, StartDate: date(t, "2024-08-01")},
		{ID: 1},
		{ID: 2, EndDate: date(t, "2024-02-01")},
	}

	got, fellBack := SelectEvents(events, 2024)
	if fellBack {
		t.Fatal("unexpected fallback")
	}
	want := []int{3, 1, 2}
	for i, ev := range got {
		if ev.ID != want[i] {
			t.Errorf("event[%d].ID = %d, want %d", i, ev.ID, want[i])
		}
	}
}
