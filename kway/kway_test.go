// Package kway_test verifies merge exactness, degenerate inputs, custom
// orderings, and agreement with a reference sort on random data.
package kway_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/heapcraft/kway"
)

func TestMerge_ThreeInterleavedSources(t *testing.T) {
	got := kway.Merge([]int{1, 4, 7}, []int{2, 5, 8}, []int{3, 6, 9})

	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("merge mismatch (-want +got):\n%s", diff)
	}
}

func TestMerge_NoSources(t *testing.T) {
	got := kway.Merge[int]()
	if len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestMerge_EmptyAndNilSourcesAreIgnored(t *testing.T) {
	got := kway.Merge([]int{}, nil, []int{5, 6}, nil, []int{1})

	want := []int{1, 5, 6}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("merge mismatch (-want +got):\n%s", diff)
	}
}

func TestMerge_SingleSourceIsCopied(t *testing.T) {
	in := []int{1, 2, 3}
	got := kway.Merge(in)

	if diff := cmp.Diff(in, got); diff != "" {
		t.Fatalf("merge mismatch (-want +got):\n%s", diff)
	}

	// The output is a fresh allocation, never an alias of the input.
	got[0] = 99
	if in[0] != 1 {
		t.Error("merge output aliases its input")
	}
}

func TestMerge_UnevenLengthsAndDuplicates(t *testing.T) {
	got := kway.Merge(
		[]int{1, 1, 10},
		[]int{1},
		[]int{0, 2, 2, 2, 11, 12},
	)

	want := []int{0, 1, 1, 1, 2, 2, 2, 10, 11, 12}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("merge mismatch (-want +got):\n%s", diff)
	}
}

func TestMerge_Strings(t *testing.T) {
	got := kway.Merge(
		[]string{"ant", "cat"},
		[]string{"bee", "dog"},
	)

	want := []string{"ant", "bee", "cat", "dog"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("merge mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeFunc_DescendingSources(t *testing.T) {
	// Sources sorted descending merge under a greater-than ordering.
	greater := func(a, b int) bool { return a > b }
	got := kway.MergeFunc(greater, []int{9, 5, 1}, []int{8, 4}, []int{7, 2})

	want := []int{9, 8, 7, 5, 4, 2, 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("merge mismatch (-want +got):\n%s", diff)
	}
}

func TestMerge_RandomAgainstReference(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	// A handful of independently sorted random sources.
	var all []int
	seqs := make([][]int, 8)
	for s := range seqs {
		seqs[s] = make([]int, r.Intn(200))
		for i := range seqs[s] {
			seqs[s][i] = r.Intn(1000)
		}
		sort.Ints(seqs[s])
		all = append(all, seqs[s]...)
	}
	sort.Ints(all)

	got := kway.Merge(seqs...)
	if diff := cmp.Diff(all, got); diff != "" {
		t.Errorf("merge mismatch (-want +got):\n%s", diff)
	}
}
