package rewards

// XPPerLevel is the experience needed for each step on the ladder.
const XPPerLevel = 100

// Level is a step on the progress ladder.
type Level struct {
	Index int
	Title string
	Icon  string
}

var ladder = []Level{
	{Title: "Messy Bun", Icon: "🎀"},
	{Title: "First Try", Icon: "👟"},
	{Title: "Soft Focus", Icon: "🌫️"},
	{Title: "Blurry Mirror", Icon: "🪞"},
	{Title: "Getting Ready", Icon: "💄"},
	{Title: "Mirror Check", Icon: "✔️"},
	{Title: "Lipgloss Level", Icon: "✨"},
	{Title: "Clean Lines", Icon: "📏"},
	{Title: "Playlist Ready", Icon: "🎧"},
	{Title: "Outfit Half-Locked", Icon: "👗"},
	{Title: "After School Glow", Icon: "☀️"},
	{Title: "Neon Mood", Icon: "🏮"},
	{Title: "Angles On Point", Icon: "📐"},
	{Title: "Friday Feeling", Icon: "💃"},
	{Title: "Main Character Moment", Icon: "🎬"},
	{Title: "Late Train Energy", Icon: "🚄"},
	{Title: "City Lights", Icon: "🌃"},
	{Title: "Bass In The Floor", Icon: "🔊"},
	{Title: "Corner Shop Stop", Icon: "🥤"},
	{Title: "No Filter Needed", Icon: "📸"},
	{Title: "Everyone Knows", Icon: "🌟"},
	{Title: "Camera Finds You", Icon: "🎥"},
	{Title: "Quiet Confidence", Icon: "🤫"},
	{Title: "Always Invited", Icon: "💌"},
	{Title: "Outfit Locked", Icon: "🔒"},
	{Title: "Glow Up I", Icon: "🔥"},
	{Title: "Glow Up II", Icon: "💎"},
	{Title: "Glow Up III", Icon: "🌌"},
	{Title: "Main Character Energy", Icon: "⚡"},
	{Title: "After Midnight", Icon: "🌙"},
}

// Levels returns the full ladder.
func Levels() []Level {
	out := make([]Level, len(ladder))
	for i, l := range ladder {
		l.Index = i
		out[i] = l
	}
	return out
}

// LevelFor returns the level reached with xp. The top level absorbs
// everything beyond the ladder.
func LevelFor(xp int) Level {
	i := min(max(xp, 0)/XPPerLevel, len(ladder)-1)
	l := ladder[i]
	l.Index = i
	return l
}

// Progress returns the xp gathered inside the current level and whether
// the ladder is maxed out.
func Progress(xp int) (inLevel int, maxed bool) {
	if LevelFor(xp).Index == len(ladder)-1 {
		return XPPerLevel, true
	}
	return max(xp, 0) % XPPerLevel, false
}
