package tasks_test

import (
	"context"
	"errors"
	"testing"

	"workable/internal/service"
	"workable/internal/tasks"
	"workable/internal/testutil"
)

func newController(fake *testutil.FakeService) *tasks.Controller {
	return tasks.New(fake, func() string { return "tok-1" })
}

func TestController_FetchAllReplacesCache(t *testing.T) {
	fake := testutil.NewFakeService()
	fake.AddTask("first", service.PriorityLow, false)
	ctrl := newController(fake)

	if !ctrl.FetchAll(context.Background()) {
		t.Fatalf("fetch failed: %s", ctrl.Err())
	}
	if len(ctrl.Tasks()) != 1 {
		t.Fatalf("expected 1 task, got %d", len(ctrl.Tasks()))
	}

	fake.AddTask("second", service.PriorityHigh, false)
	if !ctrl.FetchAll(context.Background()) {
		t.Fatalf("fetch failed: %s", ctrl.Err())
	}

	got := ctrl.Tasks()
	if len(got) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(got))
	}
	if got[0].Title != "second" {
		t.Errorf("expected newest first, got %q", got[0].Title)
	}
}

func TestController_CreatePrependsServerTask(t *testing.T) {
	fake := testutil.NewFakeService()
	fake.AddTask("existing", service.PriorityMedium, false)
	ctrl := newController(fake)
	ctrl.FetchAll(context.Background())

	created, ok := ctrl.Create(context.Background(), "fresh", service.PriorityHigh)
	if !ok {
		t.Fatalf("create failed: %s", ctrl.Err())
	}
	if created.ID == "" || created.CreatedAt.IsZero() {
		t.Errorf("expected server-populated task, got %+v", created)
	}

	got := ctrl.Tasks()
	if len(got) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(got))
	}
	if got[0].ID != created.ID {
		t.Errorf("expected created task at index 0, got %q", got[0].Title)
	}
}

func TestController_CreateKeepsNewestFirst(t *testing.T) {
	fake := testutil.NewFakeService()
	ctrl := newController(fake)
	ctrl.FetchAll(context.Background())

	titles := []string{"one", "two", "three"}
	for _, title := range titles {
		if _, ok := ctrl.Create(context.Background(), title, service.PriorityMedium); !ok {
			t.Fatalf("create %q failed: %s", title, ctrl.Err())
		}
	}

	got := ctrl.Tasks()
	want := []string{"three", "two", "one"}
	for i, title := range want {
		if got[i].Title != title {
			t.Errorf("position %d: expected %q, got %q", i, title, got[i].Title)
		}
	}
}

func TestController_ToggleReplacesCacheEntry(t *testing.T) {
	fake := testutil.NewFakeService()
	task := fake.AddTask("laundry", service.PriorityLow, false)
	ctrl := newController(fake)
	ctrl.FetchAll(context.Background())

	if !ctrl.ToggleCompletion(context.Background(), task.ID) {
		t.Fatalf("toggle failed: %s", ctrl.Err())
	}

	got := ctrl.Tasks()
	if !got[0].Completed {
		t.Error("expected cache entry to reflect the server's toggle")
	}
}

func TestController_ToggleUnknownToCacheStillCalls(t *testing.T) {
	fake := testutil.NewFakeService()
	task := fake.AddTask("laundry", service.PriorityLow, false)
	ctrl := newController(fake)
	// Cache deliberately left empty: toggling must not pre-check locally.

	if !ctrl.ToggleCompletion(context.Background(), task.ID) {
		t.Fatalf("toggle failed: %s", ctrl.Err())
	}
	if got := fake.CallCount("ToggleTask"); got != 1 {
		t.Errorf("expected 1 ToggleTask call, got %d", got)
	}
	if len(ctrl.Tasks()) != 0 {
		t.Error("expected cache unchanged when the id is not cached")
	}
}

func TestController_UpdateReplacesCacheEntry(t *testing.T) {
	fake := testutil.NewFakeService()
	task := fake.AddTask("laundry", service.PriorityLow, false)
	ctrl := newController(fake)
	ctrl.FetchAll(context.Background())

	if !ctrl.Update(context.Background(), task.ID, "dry cleaning", service.PriorityHigh) {
		t.Fatalf("update failed: %s", ctrl.Err())
	}

	got := ctrl.Tasks()[0]
	if got.Title != "dry cleaning" || got.Priority != service.PriorityHigh {
		t.Errorf("expected updated entry, got %+v", got)
	}
}

func TestController_Remove(t *testing.T) {
	fake := testutil.NewFakeService()
	keep := fake.AddTask("keep", service.PriorityMedium, false)
	drop := fake.AddTask("drop", service.PriorityMedium, false)
	ctrl := newController(fake)
	ctrl.FetchAll(context.Background())

	if !ctrl.Remove(context.Background(), drop.ID) {
		t.Fatalf("remove failed: %s", ctrl.Err())
	}

	got := ctrl.Tasks()
	if len(got) != 1 || got[0].ID != keep.ID {
		t.Errorf("expected only %q to remain, got %+v", keep.Title, got)
	}
}

func TestController_MutationFailureLeavesCache(t *testing.T) {
	fake := testutil.NewFakeService()
	fake.AddTask("existing", service.PriorityMedium, false)
	ctrl := newController(fake)
	ctrl.FetchAll(context.Background())

	fake.CreateTaskErr = errors.New("connection refused")
	if _, ok := ctrl.Create(context.Background(), "doomed", service.PriorityLow); ok {
		t.Fatal("expected create to fail")
	}

	if len(ctrl.Tasks()) != 1 {
		t.Errorf("expected cache unchanged, got %d tasks", len(ctrl.Tasks()))
	}
	if ctrl.Err() != "failed to create task: connection refused" {
		t.Errorf("unexpected error message %q", ctrl.Err())
	}

	// A later success clears the sticky error.
	fake.CreateTaskErr = nil
	if _, ok := ctrl.Create(context.Background(), "fine", service.PriorityLow); !ok {
		t.Fatalf("create failed: %s", ctrl.Err())
	}
	if ctrl.Err() != "" {
		t.Errorf("expected error cleared after success, got %q", ctrl.Err())
	}
}

func TestController_InertWithoutToken(t *testing.T) {
	fake := testutil.NewFakeService()
	fake.AddTask("existing", service.PriorityMedium, false)
	ctrl := tasks.New(fake, func() string { return "" })

	if ctrl.FetchAll(context.Background()) {
		t.Error("expected fetch to fail without a token")
	}
	if _, ok := ctrl.Create(context.Background(), "x", service.PriorityLow); ok {
		t.Error("expected create to fail without a token")
	}
	if ctrl.ToggleCompletion(context.Background(), "1") {
		t.Error("expected toggle to fail without a token")
	}

	if ctrl.Err() != "not logged in" {
		t.Errorf("expected %q, got %q", "not logged in", ctrl.Err())
	}
	// Inert means no request is ever issued.
	if len(fake.Calls) != 0 {
		t.Errorf("expected no backend calls, got %v", fake.Calls)
	}
}

func TestController_VisibleFiltersConjunction(t *testing.T) {
	fake := testutil.NewFakeService()
	fake.AddTask("low active", service.PriorityLow, false)
	fake.AddTask("high done", service.PriorityHigh, true)
	fake.AddTask("medium done", service.PriorityMedium, true)
	ctrl := newController(fake)
	ctrl.FetchAll(context.Background())

	tests := []struct {
		name    string
		status  tasks.StatusFilter
		exclude []service.Priority
		want    []string
	}{
		{"defaults show everything", tasks.StatusAll, nil,
			[]string{"medium done", "high done", "low active"}},
		{"active only", tasks.StatusActive, nil,
			[]string{"low active"}},
		{"completed only", tasks.StatusCompleted, nil,
			[]string{"medium done", "high done"}},
		{"completed without high", tasks.StatusCompleted, []service.Priority{service.PriorityHigh},
			[]string{"medium done"}},
		{"active without low", tasks.StatusActive, []service.Priority{service.PriorityLow},
			nil},
		{"all priorities excluded", tasks.StatusAll,
			[]service.Priority{service.PriorityLow, service.PriorityMedium, service.PriorityHigh},
			nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl.SetStatusFilter(tt.status)
			for _, p := range []service.Priority{service.PriorityLow, service.PriorityMedium, service.PriorityHigh} {
				ctrl.SetPriorityIncluded(p, true)
			}
			for _, p := range tt.exclude {
				ctrl.SetPriorityIncluded(p, false)
			}

			var got []string
			for _, task := range ctrl.Visible() {
				got = append(got, task.Title)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("expected %v, got %v", tt.want, got)
					break
				}
			}
		})
	}
}

func TestController_FilterIsViewStateOnly(t *testing.T) {
	fake := testutil.NewFakeService()
	fake.AddTask("low", service.PriorityLow, false)
	fake.AddTask("high", service.PriorityHigh, true)
	ctrl := newController(fake)
	ctrl.FetchAll(context.Background())

	ctrl.SetStatusFilter(tasks.StatusCompleted)
	ctrl.SetPriorityIncluded(service.PriorityLow, false)

	// The full cache is unaffected by filters.
	if len(ctrl.Tasks()) != 2 {
		t.Errorf("expected full cache of 2, got %d", len(ctrl.Tasks()))
	}
	// Filtering issues no requests.
	if got := fake.CallCount("ListTasks"); got != 1 {
		t.Errorf("expected 1 ListTasks call, got %d", got)
	}
}
