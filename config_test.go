package ctstream

import (
	"runtime"
	"testing"
	"time"
)

func TestNormalizedAppliesDefaults(t *testing.T) {
	c := NewStreamConfig("https://ct.example.com/")
	n := c.normalized()

	if n.Timeout != defaultTimeout {
		t.Errorf("Timeout = %v, want %v", n.Timeout, defaultTimeout)
	}
	if n.Batch != defaultBatch {
		t.Errorf("Batch = %d, want %d", n.Batch, defaultBatch)
	}
	wantWorkers := runtime.NumCPU()
	if wantWorkers < 1 {
		wantWorkers = 1
	}
	if n.Workers != wantWorkers {
		t.Errorf("Workers = %d, want %d", n.Workers, wantWorkers)
	}
	if n.HasIndex {
		t.Errorf("HasIndex = true, want false (tail-follow default)")
	}
}

func TestNormalizedFloorsInvalidValues(t *testing.T) {
	c := NewStreamConfig("https://ct.example.com/").WithWorkers(0).WithBatch(-5).WithTimeout(-time.Second)
	n := c.normalized()

	if n.Workers < 1 {
		t.Errorf("Workers = %d, want >= 1", n.Workers)
	}
	if n.Batch != defaultBatch {
		t.Errorf("Batch = %d, want default %d", n.Batch, defaultBatch)
	}
	if n.Timeout != defaultTimeout {
		t.Errorf("Timeout = %v, want default %v", n.Timeout, defaultTimeout)
	}
}

func TestWithIndexSetsHasIndex(t *testing.T) {
	c := NewStreamConfig("https://ct.example.com/").WithIndex(42)
	if !c.HasIndex || c.Index != 42 {
		t.Fatalf("c = %+v, want HasIndex=true Index=42", c)
	}
}

func TestBuilderChaining(t *testing.T) {
	c := NewStreamConfig("https://ct.example.com/").
		WithTimeout(2 * time.Second).
		WithWorkers(8).
		WithBatch(500).
		WithIndex(10)

	n := c.normalized()
	if n.Timeout != 2*time.Second || n.Workers != 8 || n.Batch != 500 || n.Index != 10 || !n.HasIndex {
		t.Fatalf("n = %+v, unexpected", n)
	}
}
