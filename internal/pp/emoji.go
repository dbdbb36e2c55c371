package pp

// Emoji is the type of emoji strings.
type Emoji string

const (
	EmojiStar   Emoji = "🌟" // stars attached to the tool name
	EmojiBullet Emoji = "🔸" // generic bullet points

	EmojiEnvVars Emoji = "📖" // reading configuration
	EmojiConfig  Emoji = "🔧" // showing configuration
	EmojiMute    Emoji = "🔇" // quiet mode

	EmojiExpression  Emoji = "📝" // the cron expression being explained
	EmojiDescription Emoji = "💬" // the English description of an expression
	EmojiCalendar    Emoji = "📅" // upcoming run times
	EmojiPreset      Emoji = "📌" // built-in presets
	EmojiNothing     Emoji = "🕳️" // no runs found within the search window

	EmojiSignal Emoji = "🚨" // catching signals
	EmojiNow    Emoji = "🏃" // an event that is happening now or immediately
	EmojiAlarm  Emoji = "⏰" // an event that is scheduled to happen, but not immediately
	EmojiBye    Emoji = "👋" // bye!

	EmojiGood        Emoji = "😊" // good news
	EmojiUserError   Emoji = "😡" // configuration mistakes made by users
	EmojiUserWarning Emoji = "😦" // warnings about possible configuration mistakes
	EmojiError       Emoji = "😞" // errors that are not (directly) caused by user errors
	EmojiWarning     Emoji = "😐" // warnings about something unusual
	EmojiImpossible  Emoji = "🤯" // the impossible happened
	EmojiHint        Emoji = "💡" // Hints
)

// indentPrefix should be wider than an emoji to achieve visually pleasing results.
const indentPrefix = "   "
