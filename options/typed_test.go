package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewOptionIsEmpty(t *testing.T) {
	opt := New[uint32]("batch-size")

	assert.Equal(t, "batch-size", opt.Name)
	assert.Equal(t, KindUint32, opt.Kind)
	assert.False(t, opt.ValueSupplied())
	assert.False(t, opt.DefaultValueSupplied())
	assert.Empty(t, opt.OneOf())
	assert.Empty(t, opt.OneOfError)
}

// assertRoundTrip assigns sample to a fresh option and reads it back.
func assertRoundTrip[T ValueType](t *testing.T, sample T) {
	t.Helper()

	opt := New[T]("opt").SetValue(sample, false)

	assert.True(t, opt.ValueSupplied())
	v, err := opt.Value()
	assert.NoError(t, err)
	assert.Equal(t, sample, v)
}

func TestSetValueRoundTrip(t *testing.T) {
	assertRoundTrip(t, uint32(7))
	assertRoundTrip(t, uint64(1)<<40)
	assertRoundTrip(t, int32(-9))
	assertRoundTrip(t, int64(-1)<<40)
	assertRoundTrip(t, 0.25)
	assertRoundTrip(t, true)
	assertRoundTrip(t, "fast")
	assertRoundTrip(t, []string{"a", "b"})
}

func TestZeroValueIsStillAValue(t *testing.T) {
	opt := New[uint32]("retries").SetValue(0, false)

	assert.True(t, opt.ValueSupplied())
	v, err := opt.Value()
	assert.NoError(t, err)
	assert.Zero(t, v)
}

func TestMissingValue(t *testing.T) {
	opt := New[string]("tag")

	_, err := opt.Value()

	var missing *MissingValueError
	assert.ErrorAs(t, err, &missing)
	assert.Equal(t, "tag", missing.Option)
	assert.Contains(t, err.Error(), "--tag")
}

func TestMissingDefault(t *testing.T) {
	opt := New[string]("tag").SetValue("v", false)

	_, err := opt.DefaultValue()

	var missing *MissingDefaultError
	assert.ErrorAs(t, err, &missing)
	assert.Equal(t, "tag", missing.Option)
}

func TestValueAndDefaultAreIndependent(t *testing.T) {
	opt := New[int64]("offset")
	opt.SetDefaultValue(10)

	assert.False(t, opt.ValueSupplied())
	assert.True(t, opt.DefaultValueSupplied())
	_, err := opt.Value()
	assert.Error(t, err)

	opt.SetValue(-3, false)

	def, err := opt.DefaultValue()
	assert.NoError(t, err)
	assert.Equal(t, int64(10), def)
	v, err := opt.Value()
	assert.NoError(t, err)
	assert.Equal(t, int64(-3), v)
}

func TestValueOrDefault(t *testing.T) {
	opt := New[float64]("interval")
	assert.Zero(t, opt.ValueOrDefault())

	opt.SetDefaultValue(1.5)
	assert.Equal(t, 1.5, opt.ValueOrDefault())

	opt.SetValue(0.25, false)
	assert.Equal(t, 0.25, opt.ValueOrDefault())
}

func TestDeclarationChaining(t *testing.T) {
	opt := New[uint32]("batch-size").
		WithShortName("b").
		WithHelp("records per batch").
		WithKeep().
		WithNecessary().
		WithAllowOverride().
		WithHiddenFromHelp().
		WithDefault(32).
		WithOneOf(16, 32, 64)

	assert.Equal(t, "b", opt.ShortName)
	assert.Equal(t, "records per batch", opt.Help)
	assert.True(t, opt.Keep)
	assert.True(t, opt.Necessary)
	assert.True(t, opt.AllowOverride)
	assert.True(t, opt.HiddenFromHelp)
	def, err := opt.DefaultValue()
	assert.NoError(t, err)
	assert.Equal(t, uint32(32), def)
	assert.Equal(t, []uint32{16, 32, 64}, opt.OneOf())
}

func TestChoiceViolationIsAdvisory(t *testing.T) {
	opt := New[int32]("batch-size")
	opt.SetDefaultValue(32)
	opt.SetOneOf(16, 32, 64)

	opt.SetValue(100, true)

	v, err := opt.Value()
	assert.NoError(t, err)
	assert.Equal(t, int32(100), v)
	def, err := opt.DefaultValue()
	assert.NoError(t, err)
	assert.Equal(t, int32(32), def)
	assert.Equal(t, "Error: '100' is not a valid choice for option --batch-size. Please select from {16, 32, 64}", opt.OneOfError)
}

func TestChoiceMembersAccepted(t *testing.T) {
	opt := New[string]("protocol").WithOneOf("tcp", "udp")

	opt.SetValue("udp", true)

	assert.Empty(t, opt.OneOfError)
}

func TestChoiceViolationIsNotRetracted(t *testing.T) {
	opt := New[string]("mode").WithOneOf("fast", "slow")

	opt.SetValue("medium", true)
	assert.NotEmpty(t, opt.OneOfError)

	opt.SetValue("fast", true)

	v, err := opt.Value()
	assert.NoError(t, err)
	assert.Equal(t, "fast", v)
	assert.NotEmpty(t, opt.OneOfError)
}

func TestChoicesDoNotRevalidateStoredValue(t *testing.T) {
	opt := New[uint32]("bits").SetValue(7, true)

	opt.SetOneOf(8, 16)

	assert.Empty(t, opt.OneOfError)
}

func TestSetOneOfReplacesAndDeduplicates(t *testing.T) {
	opt := New[string]("mode").WithOneOf("legacy")

	opt.SetOneOf("fast", "slow", "fast")

	assert.Equal(t, []string{"fast", "slow"}, opt.OneOf())
}

func TestOneOfReturnsACopy(t *testing.T) {
	opt := New[uint32]("bits").WithOneOf(1, 2)

	choices := opt.OneOf()
	choices[0] = 99

	assert.Equal(t, []uint32{1, 2}, opt.OneOf())
}

func TestTypedOptionEqual(t *testing.T) {
	base := func() *TypedOption[uint32] {
		return New[uint32]("batch-size").
			WithShortName("b").
			WithHelp("records per batch").
			WithDefault(32)
	}

	tests := []struct {
		name   string
		mutate func(o *TypedOption[uint32])
		want   bool
	}{
		{"identical", func(*TypedOption[uint32]) {}, true},
		{"different name", func(o *TypedOption[uint32]) { o.Name = "chunk-size" }, false},
		{"different help", func(o *TypedOption[uint32]) { o.Help = "other" }, false},
		{"different short name", func(o *TypedOption[uint32]) { o.ShortName = "c" }, false},
		{"different keep", func(o *TypedOption[uint32]) { o.Keep = true }, false},
		{"different necessary", func(o *TypedOption[uint32]) { o.Necessary = true }, false},
		{"different default", func(o *TypedOption[uint32]) { o.SetDefaultValue(64) }, false},
		{"allow override ignored", func(o *TypedOption[uint32]) { o.AllowOverride = true }, true},
		{"hidden ignored", func(o *TypedOption[uint32]) { o.HiddenFromHelp = true }, true},
		{"choice violation ignored", func(o *TypedOption[uint32]) { o.OneOfError = "Error" }, true},
		{"assigned value ignored", func(o *TypedOption[uint32]) { o.SetValue(7, false) }, true},
		{"choice set ignored", func(o *TypedOption[uint32]) { o.SetOneOf(16, 32) }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, right := base(), base()
			tt.mutate(right)
			assert.Equal(t, tt.want, left.Equal(right))
			assert.Equal(t, tt.want, right.Equal(left))
		})
	}
}

func TestEqualDefaultPresence(t *testing.T) {
	left := New[string]("tag")
	right := New[string]("tag")
	assert.True(t, left.Equal(right))

	right.SetDefaultValue("x")

	assert.False(t, left.Equal(right))
	assert.False(t, right.Equal(left))
}

func TestDescriptorEqualIgnoresDefault(t *testing.T) {
	left := New[uint32]("n").WithDefault(1)
	right := New[uint32]("n").WithDefault(2)

	assert.False(t, left.Equal(right))
	assert.True(t, left.Base().Equal(right.Base()))
}

func TestBaseSharesState(t *testing.T) {
	opt := New[bool]("verbose")
	var erased Option = opt

	erased.Base().Help = "print more"

	assert.Equal(t, "print more", opt.Help)
}
