// SPDX-License-Identifier: Apache-2.0

package workers

import "testing"

// recordingWorker tracks how many times Run was called and in what order.
type recordingWorker struct {
	id       int
	runCount int
	order    *[]int
}

func (w *recordingWorker) Run() {
	w.runCount++
	if w.order != nil {
		*w.order = append(*w.order, w.id)
	}
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &recordingWorker{}
	w2 := &recordingWorker{}
	w3 := &recordingWorker{}

	NewWorkers(w1, w2, w3).Run()

	for i, w := range []*recordingWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	// Should not panic on an empty workers list.
	NewWorkers().Run()
}

func TestWorkers_Run_Order(t *testing.T) {
	order := []int{}

	NewWorkers(
		&recordingWorker{id: 1, order: &order},
		&recordingWorker{id: 2, order: &order},
		&recordingWorker{id: 3, order: &order},
	).Run()

	expected := []int{1, 2, 3}
	if len(order) != len(expected) {
		t.Fatalf("expected %d runs, got %d", len(expected), len(order))
	}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("expected order[%d]=%d, got %d", i, v, order[i])
		}
	}
}
