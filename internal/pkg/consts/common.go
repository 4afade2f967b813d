package consts

const (
	DefaultAuthorName = "Anonymous"
	AvatarURLPrefix   = "https://api.dicebear.com/7.x/initials/svg?seed="
)

const (
	WordsPerMinute     = 200
	TrendingBodyLength = 200
	DefaultPageSize    = 10
)

const (
	TitleMaxLength = 100
	BodyMaxLength  = 1000
)

// TrendingTags 命中任意一个（不区分大小写）即为 trending
var TrendingTags = []string{"trending", "popular", "news"}
