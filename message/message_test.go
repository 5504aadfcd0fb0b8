package message

import (
	"testing"

	"github.com/hl7bridge/hl7v2/segir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seg(id string) Segment { return Segment{ID: id, Values: segir.Values{}} }

func TestSegmentAndCount(t *testing.T) {
	m := New([]Segment{seg("MSH"), seg("PID"), seg("OBX"), seg("OBX")})

	s, ok := m.Segment("OBX", 0)
	require.True(t, ok)
	assert.Equal(t, "OBX", s.ID)

	s, ok = m.Segment("OBX", 1)
	require.True(t, ok)
	assert.Equal(t, "OBX", s.ID)

	_, ok = m.Segment("OBX", 2)
	assert.False(t, ok)

	assert.Equal(t, 2, m.SegmentCount("OBX"))
	assert.Equal(t, 0, m.SegmentCount("ZZZ"))
}

// TestPairedSegmentsGapTolerance is the seed scenario from spec.md §8/§4.8:
// given [PR1, OBX, AUT, PR1, OBX, AUT], PairedSegments(["PR1","OBX","AUT"],1)
// returns the three segments from the second group.
func TestPairedSegmentsGapTolerance(t *testing.T) {
	m := New([]Segment{seg("PR1"), seg("OBX"), seg("AUT"), seg("PR1"), seg("OBX"), seg("AUT")})
	group := m.PairedSegments([]string{"PR1", "OBX", "AUT"}, 1)
	require.Len(t, group, 3)
	assert.Equal(t, "PR1", group[0].ID)
	assert.Equal(t, "OBX", group[1].ID)
	assert.Equal(t, "AUT", group[2].ID)
}

func TestPairedSegmentsSkipsMissingOptional(t *testing.T) {
	// B is absent between A and C: PairedSegments(msg, [A,B,C]) returns [A,C].
	m := New([]Segment{seg("A"), seg("C")})
	group := m.PairedSegments([]string{"A", "B", "C"}, 0)
	require.Len(t, group, 2)
	assert.Equal(t, "A", group[0].ID)
	assert.Equal(t, "C", group[1].ID)
}

func TestPairedSegmentsNoMatch(t *testing.T) {
	m := New([]Segment{seg("MSH")})
	group := m.PairedSegments([]string{"PR1", "OBX"}, 0)
	assert.Nil(t, group)
}

func TestPairedSegmentsEmptyIDs(t *testing.T) {
	m := New([]Segment{seg("MSH")})
	assert.Nil(t, m.PairedSegments(nil, 0))
}

func TestReducePairedSegments(t *testing.T) {
	m := New([]Segment{
		seg("PR1"), seg("OBX"),
		seg("PR1"), seg("OBX"),
		seg("PR1"), seg("OBX"),
	})
	count := ReducePairedSegments(m, []string{"PR1", "OBX"}, 0, 0, func(group []Segment, index int, acc int) int {
		return acc + 1
	})
	assert.Equal(t, 3, count)
}

func TestInsertBeforeAfter(t *testing.T) {
	m := New([]Segment{seg("MSH"), seg("PID")})

	before := m.InsertBefore("PID", 0, seg("PV1"))
	ids := idsOf(before)
	assert.Equal(t, []string{"MSH", "PV1", "PID"}, ids)

	after := m.InsertAfter("MSH", 0, seg("EVN"))
	assert.Equal(t, []string{"MSH", "EVN", "PID"}, idsOf(after))
}

func TestInsertMissingRepetitionNoOp(t *testing.T) {
	m := New([]Segment{seg("MSH")})
	out := m.InsertBefore("PID", 0, seg("X"))
	assert.Equal(t, m, out)
}

func TestReplace(t *testing.T) {
	m := New([]Segment{seg("MSH"), seg("PID")})
	out := m.Replace("PID", 0, seg("PV1"))
	assert.Equal(t, []string{"MSH", "PV1"}, idsOf(out))
}

func TestReplaceMissingRepetitionNoOp(t *testing.T) {
	m := New([]Segment{seg("MSH")})
	out := m.Replace("PID", 0, seg("X"))
	assert.Equal(t, m, out)
}

func TestDelete(t *testing.T) {
	m := New([]Segment{seg("MSH"), seg("PID"), seg("PV1")})
	out := m.Delete("PID", 0)
	assert.Equal(t, []string{"MSH", "PV1"}, idsOf(out))
}

func TestDeleteMissingRepetitionNoOp(t *testing.T) {
	m := New([]Segment{seg("MSH")})
	out := m.Delete("PID", 0)
	assert.Equal(t, m, out)
}

func TestMessageIsImmutable(t *testing.T) {
	segs := []Segment{seg("MSH"), seg("PID")}
	m := New(segs)
	segs[0] = seg("ZZZ")
	assert.Equal(t, "MSH", m.Segments()[0].ID)

	returned := m.Segments()
	returned[0] = seg("ZZZ")
	assert.Equal(t, "MSH", m.Segments()[0].ID)
}

func idsOf(m Message) []string {
	segs := m.Segments()
	out := make([]string, len(segs))
	for i, s := range segs {
		out[i] = s.ID
	}
	return out
}
