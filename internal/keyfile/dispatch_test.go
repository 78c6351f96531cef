// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package keyfile

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchTable_IsSortedAndDuplicateFree(t *testing.T) {
	for i := 1; i < len(dispatchTable); i++ {
		a, b := dispatchTable[i-1], dispatchTable[i]
		less := a.setting < b.setting || (a.setting == b.setting && a.property < b.property)
		assert.Truef(t, less, "entries %d and %d out of order: (%s,%s) then (%s,%s)",
			i-1, i, a.setting, a.property, b.setting, b.property)
	}
}

func TestCheckDispatchTableOrder_PanicsOnOutOfOrderEntries(t *testing.T) {
	table := []dispatchEntry{
		{setting: "b", property: "x"},
		{setting: "a", property: "y"},
	}
	assert.Panics(t, func() { checkDispatchTableOrder(table) })
}

func TestCheckDispatchTableOrder_LogsAndPanicsOnDuplicateKey(t *testing.T) {
	table := []dispatchEntry{
		{setting: "a", property: "x"},
		{setting: "a", property: "x"},
	}

	var buf bytes.Buffer
	orig := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(orig)

	assert.Panics(t, func() { checkDispatchTableOrder(table) })
	assert.Contains(t, buf.String(), "[KEYFILE]")
	assert.Contains(t, buf.String(), "duplicate dispatch table entry")
}

func TestCheckDispatchTableOrder_AcceptsSortedDistinctEntries(t *testing.T) {
	table := []dispatchEntry{
		{setting: "a", property: "x"},
		{setting: "a", property: "y"},
		{setting: "b", property: "a"},
	}
	assert.NotPanics(t, func() { checkDispatchTableOrder(table) })
}

func TestFindDispatch_FirstLastAndAbsentEntries(t *testing.T) {
	first := dispatchTable[0]
	entry, ok := findDispatch(first.setting, first.property)
	assert.True(t, ok)
	assert.Same(t, &dispatchTable[0], entry)

	last := dispatchTable[len(dispatchTable)-1]
	entry, ok = findDispatch(last.setting, last.property)
	assert.True(t, ok)
	assert.Same(t, &dispatchTable[len(dispatchTable)-1], entry)

	_, ok = findDispatch("not-a-real-setting", "not-a-real-property")
	assert.False(t, ok)

	// setting exists, property does not: exercises the branch where
	// e.setting == setting but e.property never matches.
	_, ok = findDispatch("ipv4", "not-a-real-property")
	assert.False(t, ok)

	// property name exists under a different setting: exercises the
	// branch where e.setting != setting for every candidate.
	_, ok = findDispatch("not-a-real-setting", "mac-address")
	assert.False(t, ok)
}

func TestFindDispatch_EveryTableEntryIsFindable(t *testing.T) {
	for _, e := range dispatchTable {
		found, ok := findDispatch(e.setting, e.property)
		assert.Truef(t, ok, "entry (%s,%s) not found via findDispatch", e.setting, e.property)
		assert.Equal(t, e.setting, found.setting)
		assert.Equal(t, e.property, found.property)
	}
}
