package explainer_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/favonia/cron-explainer/internal/cron"
	"github.com/favonia/cron-explainer/internal/describer"
	"github.com/favonia/cron-explainer/internal/explainer"
	"github.com/favonia/cron-explainer/internal/mocks"
	"github.com/favonia/cron-explainer/internal/pp"
)

var errDummy = errors.New("dummy error")

func at(month time.Month, day, hour, minute int) time.Time {
	return time.Date(2024, month, day, hour, minute, 0, 0, time.UTC)
}

//nolint:funlen
func TestExplain(t *testing.T) {
	t.Parallel()

	now := at(time.January, 1, 0, 1)

	for name, tc := range map[string]struct {
		expr                 string
		count                int
		valid                bool
		description          string
		runs                 []time.Time
		exhausted            bool
		prepareMockDescriber func(*mocks.MockDescriber)
		prepareMockPP        func(*mocks.MockPP)
	}{
		"blank": {
			"   ", 4, true, "", nil, false,
			nil,
			nil,
		},
		"quarter-hours": {
			"*/15 * * * *", 4, true, "Every 15 minutes",
			[]time.Time{
				at(time.January, 1, 0, 15),
				at(time.January, 1, 0, 30),
				at(time.January, 1, 0, 45),
				at(time.January, 1, 1, 0),
			},
			false,
			func(m *mocks.MockDescriber) {
				m.EXPECT().Describe("*/15 * * * *").Return("Every 15 minutes", nil)
			},
			nil,
		},
		"undescribable": {
			"hello world", 4, false, describer.InvalidExpression, nil, false,
			func(m *mocks.MockDescriber) {
				m.EXPECT().Describe("hello world").Return("", errDummy)
			},
			func(m *mocks.MockPP) {
				m.EXPECT().Noticef(pp.EmojiUserError, "Failed to describe %q", "hello world")
			},
		},
		"macro": {
			"@daily", 4, false, describer.InvalidExpression, nil, false,
			func(m *mocks.MockDescriber) {
				m.EXPECT().Describe("@daily").Return("", errDummy)
			},
			func(m *mocks.MockPP) {
				gomock.InOrder(
					m.EXPECT().Noticef(pp.EmojiUserError, "Failed to describe %q", "@daily"),
					m.EXPECT().Hintf(pp.HintFiveFieldsOnly, gomock.Any()),
				)
			},
		},
		"seconds": {
			"0 * * * * *", 4, false, describer.InvalidExpression, nil, false,
			func(m *mocks.MockDescriber) {
				m.EXPECT().Describe("0 * * * * *").Return("Every minute", nil)
			},
			func(m *mocks.MockPP) {
				gomock.InOrder(
					m.EXPECT().Noticef(pp.EmojiUserError, "%q is not a valid cron expression: %v",
						"0 * * * * *", gomock.Any()),
					m.EXPECT().Hintf(pp.HintFiveFieldsOnly, gomock.Any()),
				)
			},
		},
		"bad-field": {
			"*/x * * * *", 4, false, describer.InvalidExpression, nil, false,
			func(m *mocks.MockDescriber) {
				m.EXPECT().Describe("*/x * * * *").Return("Sure", nil)
			},
			func(m *mocks.MockPP) {
				m.EXPECT().Noticef(pp.EmojiUserError, "%q is not a valid cron expression: %v",
					"*/x * * * *", gomock.Any())
			},
		},
		"out-of-range": {
			"70 * * * *", 4, true, "At 70 minutes past the hour", []time.Time{}, true,
			func(m *mocks.MockDescriber) {
				m.EXPECT().Describe("70 * * * *").Return("At 70 minutes past the hour", nil)
			},
			func(m *mocks.MockPP) {
				m.EXPECT().Hintf(pp.HintOutOfRangeValues, gomock.Any())
			},
		},
		"friday-13th": {
			"0 0 13 * 5", 3, true, "At 00:00, on day 13 of the month, and on Friday",
			[]time.Time{at(time.September, 13, 0, 0), at(time.December, 13, 0, 0)},
			true,
			func(m *mocks.MockDescriber) {
				m.EXPECT().Describe("0 0 13 * 5").Return("At 00:00, on day 13 of the month, and on Friday", nil)
			},
			func(m *mocks.MockPP) {
				m.EXPECT().Hintf(pp.HintPOSIXDaySemantics, gomock.Any(), "0 0 13 * 5", "Fri, 5 Jan 2024, 00:00")
			},
		},
		"31st-monday": {
			"0 0 31 * 1", 2, true, "At 00:00, on day 31 of the month, and on Monday", []time.Time{}, true,
			func(m *mocks.MockDescriber) {
				m.EXPECT().Describe("0 0 31 * 1").Return("At 00:00, on day 31 of the month, and on Monday", nil)
			},
			func(m *mocks.MockPP) {
				m.EXPECT().Hintf(pp.HintPOSIXDaySemantics, gomock.Any(), "0 0 31 * 1", "Mon, 8 Jan 2024, 00:00")
			},
		},
		"new-year-monday": {
			"0 0 1 1 1", 1, true, "At 00:00, on day 1 of the month, and on Monday, only in January",
			[]time.Time{}, true,
			func(m *mocks.MockDescriber) {
				m.EXPECT().Describe("0 0 1 1 1").Return("At 00:00, on day 1 of the month, and on Monday, only in January", nil) //nolint:lll
			},
			func(m *mocks.MockPP) {
				m.EXPECT().Hintf(pp.HintPOSIXDaySemantics, gomock.Any(), "0 0 1 1 1", "Mon, 8 Jan 2024, 00:00")
			},
		},
		"whole-month-friday": {
			"0 0 1-31 * 5", 2, true, "At 00:00, between day 1 and 31 of the month, and on Friday",
			[]time.Time{at(time.January, 5, 0, 0), at(time.January, 12, 0, 0)},
			false,
			func(m *mocks.MockDescriber) {
				m.EXPECT().Describe("0 0 1-31 * 5").Return("At 00:00, between day 1 and 31 of the month, and on Friday", nil)
			},
			func(m *mocks.MockPP) {
				m.EXPECT().Hintf(pp.HintPOSIXDaySemantics, gomock.Any(), "0 0 1-31 * 5", "Tue, 2 Jan 2024, 00:00")
			},
		},
		"every-day-of-week": {
			"0 0 1-31 * 0-6", 1, true, "At 00:00, between day 1 and 31 of the month, and Sunday through Saturday",
			[]time.Time{at(time.January, 2, 0, 0)},
			false,
			func(m *mocks.MockDescriber) {
				m.EXPECT().Describe("0 0 1-31 * 0-6").Return("At 00:00, between day 1 and 31 of the month, and Sunday through Saturday", nil) //nolint:lll
			},
			nil,
		},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			mockCtrl := gomock.NewController(t)
			mockPP := mocks.NewMockPP(mockCtrl)
			if tc.prepareMockPP != nil {
				tc.prepareMockPP(mockPP)
			}
			mockDescriber := mocks.NewMockDescriber(mockCtrl)
			if tc.prepareMockDescriber != nil {
				tc.prepareMockDescriber(mockDescriber)
			}

			e := explainer.Explainer{
				Describer: mockDescriber,
				Walker:    cron.Walker{Now: func() time.Time { return now }, MaxIterations: 0},
				Count:     tc.count,
			}
			r := e.Explain(mockPP, tc.expr)
			require.Equal(t, tc.expr, r.Expression)
			require.Equal(t, tc.valid, r.Valid)
			require.Equal(t, tc.description, r.Description)
			require.Equal(t, tc.runs, r.Runs)
			require.Equal(t, tc.exhausted, r.Exhausted())
		})
	}
}

func TestExplainEnglish(t *testing.T) {
	t.Parallel()

	d, err := describer.NewEnglish()
	require.NoError(t, err)

	e := explainer.Explainer{
		Describer: d,
		Walker:    cron.Walker{Now: func() time.Time { return at(time.January, 1, 0, 0) }, MaxIterations: 0},
		Count:     explainer.DefaultCount,
	}

	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)

	for _, preset := range explainer.Presets {
		r := e.Explain(mockPP, preset.Expression)
		require.True(t, r.Valid, preset.Label)
		require.NotEqual(t, describer.InvalidExpression, r.Description, preset.Label)
		require.Len(t, r.Runs, explainer.DefaultCount, preset.Label)
		require.False(t, r.Exhausted(), preset.Label)
	}
}
