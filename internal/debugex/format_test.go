package debugex

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrisreddington/debugex/internal/testutil"
	"github.com/chrisreddington/debugex/internal/types"
)

var fixedTime = time.Date(2024, 3, 1, 13, 4, 5, 123456789, time.Local)

func newTestFormatter(info types.CallerInfo) *Formatter {
	return NewFormatter(NewConfigWithCallerInfo(info), testutil.FixedClock(fixedTime))
}

var sampleCaller = types.CallerContext{Member: "Foo", FilePath: "/a/b.cs", Line: 42}

func TestFormatWithAllCallerInfo(t *testing.T) {
	f := newTestFormatter(types.CallerInfoNone)

	out := f.FormatWith("hello", types.CallerInfoAll, sampleCaller)

	assert.Equal(t, []string{
		"---DEBUG------------------->>",
		" Message               :hello",
		" Time                  :01:04:05.1234",
		" Member name           :Foo",
		" File path             :/a/b.cs",
		" Line number           :42",
		"<<---------------------------",
	}, strings.Split(out, lineTerminator))
}

func TestFormatWithMemberAndLine(t *testing.T) {
	f := newTestFormatter(types.CallerInfoAll)

	out := f.FormatWith("hello", types.CallerInfoMemberName|types.CallerInfoLineNumber, sampleCaller)

	assert.Equal(t, []string{
		Header,
		" Message               :hello",
		" Member name           :Foo",
		" Line number           :42",
		Footer,
	}, strings.Split(out, lineTerminator))
}

func TestFormatEmptyMessageNoCallerInfo(t *testing.T) {
	f := newTestFormatter(types.CallerInfoAll)

	lines := strings.Split(f.FormatWith("", types.CallerInfoNone, types.CallerContext{}), lineTerminator)

	require.Len(t, lines, 3)
	assert.Equal(t, Header, lines[0])
	assert.Equal(t, " Message               :", lines[1])
	assert.Equal(t, Footer, lines[2])
}

func TestFormatZeroCallerContext(t *testing.T) {
	f := newTestFormatter(types.CallerInfoAll)

	lines := strings.Split(f.Format("x", types.CallerContext{}), lineTerminator)

	require.Len(t, lines, 7)
	assert.Equal(t, " Member name           :", lines[3])
	assert.Equal(t, " File path             :", lines[4])
	assert.Equal(t, " Line number           :0", lines[5])
}

func TestFormatEverySubset(t *testing.T) {
	f := newTestFormatter(types.CallerInfoNone)
	order := []struct {
		flag   types.CallerInfo
		prefix string
	}{
		{types.CallerInfoTime, " Time "},
		{types.CallerInfoMemberName, " Member name "},
		{types.CallerInfoFilePath, " File path "},
		{types.CallerInfoLineNumber, " Line number "},
	}

	for info := types.CallerInfoNone; info <= types.CallerInfoAll; info++ {
		t.Run(info.String(), func(t *testing.T) {
			lines := strings.Split(f.FormatWith("msg", info, sampleCaller), lineTerminator)

			assert.Equal(t, Header, lines[0])
			assert.Equal(t, " Message               :msg", lines[1])
			assert.Equal(t, Footer, lines[len(lines)-1])

			var want []string
			for _, o := range order {
				if info.Has(o.flag) {
					want = append(want, o.prefix)
				}
			}
			conditional := lines[2 : len(lines)-1]
			require.Len(t, conditional, len(want))
			for i, prefix := range want {
				assert.True(t, strings.HasPrefix(conditional[i], prefix), "line %q should start with %q", conditional[i], prefix)
			}
		})
	}
}

func TestFormatMessageLineAppearsOnce(t *testing.T) {
	f := newTestFormatter(types.CallerInfoAll)

	out := f.Format("only once", sampleCaller)

	assert.Equal(t, 1, strings.Count(out, " Message               :only once"))
	assert.True(t, strings.HasPrefix(out, Header+lineTerminator))
	assert.True(t, strings.HasSuffix(out, lineTerminator+Footer))
}

func TestFormatUsesDefaultCallerInfo(t *testing.T) {
	config := NewConfig()
	f := NewFormatter(config, testutil.FixedClock(fixedTime))

	for _, info := range []types.CallerInfo{
		types.CallerInfoNone,
		types.CallerInfoFilePath,
		types.CallerInfoTime | types.CallerInfoLineNumber,
		types.CallerInfoAll,
	} {
		config.SetDefaultCallerInfo(info)
		assert.Equal(t, f.FormatWith("m", info, sampleCaller), f.Format("m", sampleCaller), "default %s", info)
	}
}

func TestFormatIsDeterministicApartFromTime(t *testing.T) {
	ticks := []time.Time{fixedTime, fixedTime.Add(90 * time.Minute)}
	i := 0
	f := NewFormatter(NewConfig(), func() time.Time {
		now := ticks[i%len(ticks)]
		i++
		return now
	})

	first := strings.Split(f.Format("same", sampleCaller), lineTerminator)
	second := strings.Split(f.Format("same", sampleCaller), lineTerminator)

	require.Len(t, second, len(first))
	for n := range first {
		if strings.HasPrefix(first[n], " Time ") {
			assert.NotEqual(t, first[n], second[n])
			continue
		}
		assert.Equal(t, first[n], second[n])
	}

	withoutTime := types.CallerInfoAll &^ types.CallerInfoTime
	assert.Equal(t, f.FormatWith("same", withoutTime, sampleCaller), f.FormatWith("same", withoutTime, sampleCaller))
}

func TestTimeLayoutUsesTwelveHourClock(t *testing.T) {
	tests := []struct {
		name     string
		at       time.Time
		expected string
	}{
		{"afternoon", time.Date(2024, 1, 1, 13, 4, 5, 0, time.Local), "01:04:05.0000"},
		{"morning", time.Date(2024, 1, 1, 1, 4, 5, 0, time.Local), "01:04:05.0000"},
		{"midnight", time.Date(2024, 1, 1, 0, 0, 0, 987650000, time.Local), "12:00:00.9876"},
		{"noon", time.Date(2024, 1, 1, 12, 30, 59, 500000, time.Local), "12:30:59.0005"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.at.Format(TimeLayout))
		})
	}
}

func TestNewFormatterDefaults(t *testing.T) {
	f := NewFormatter(nil, nil)

	require.NotNil(t, f.Config())
	assert.Equal(t, types.CallerInfoAll, f.Config().DefaultCallerInfo())
	assert.Len(t, strings.Split(f.Format("x", sampleCaller), lineTerminator), 7)
}
