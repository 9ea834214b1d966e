package util

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Mod is the euclidean remainder, always in [0, m) for positive m.
func Mod[A constraints.Integer](a A, m A) A {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Max[A constraints.Integer](num1 A, num2 A) A {
	if num1 < num2 {
		return num2
	}
	return num1
}

// Dedupe keeps the first occurrence of every value, preserving order.
func Dedupe[A comparable](vals []A) []A {
	seen := make(map[A]bool, len(vals))
	var res []A
	for _, v := range vals {
		if seen[v] {
			continue
		}
		seen[v] = true
		res = append(res, v)
	}
	return res
}

// NewOutputPath makes sure dir exists and returns a fresh file path inside it.
func NewOutputPath(dir string, ext string) (string, error) {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return "", err
	}
	return filepath.Join(dir, uuid.New().String()+ext), nil
}
