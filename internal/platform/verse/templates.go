package verse

import "github.com/quatrainhq/quatrain-api/internal/domain"

// Word banks used to fill template placeholders.
var wordBanks = map[string][]string{
	"flower":    {"roses", "lilies", "daisies", "tulips", "orchids", "sunflowers", "peonies", "violets"},
	"season":    {"spring", "summer", "autumn", "winter", "dawn", "twilight"},
	"adjective": {"gentle", "radiant", "peaceful", "vibrant", "serene", "luminous", "graceful", "tender", "mystical", "enchanting"},
	"noun":      {"whisper", "melody", "harmony", "symphony", "journey", "treasure", "wonder", "miracle", "magic", "beauty"},
	"body_part": {"eyes", "smile", "heart", "soul", "voice", "touch"},
	"weather":   {"misty", "golden", "silver", "crystal", "starlit", "moonlit"},
	"celestial": {"stars", "moon", "sun", "comets", "galaxies", "constellations"},
	"location":  {"meadows", "mountains", "forests", "gardens", "valleys", "riversides", "hillsides"},
	"animal":    {"birds", "deer", "butterflies", "foxes", "rabbits", "eagles", "dolphins"},
	"tree":      {"oaks", "willows", "pines", "maples", "birches", "cedars"},
}

// themeTemplates holds the curated stanzas per theme category and length.
// Placeholders use {category} syntax; {Category} renders capitalized.
var themeTemplates = map[string]map[domain.PoemLength][]string{
	"love": {
		domain.LengthShort: {
			"Love blooms like {flower} in {season},\nTwo souls united beyond all reason.\nIn {adjective} moments we find our way,\nLove's gentle {noun} brightens each day.",
			"Your {body_part} speaks what words cannot say,\nIn love's embrace we'll always stay.\nThrough {weather} storms and sunny skies,\nOur love's the {noun} that never dies.",
			"Like {celestial} dancing in the night,\nOur hearts burn with {adjective} light.\nIn {location} or {location} we roam,\nYour love will always be my home.",
		},
		domain.LengthMedium: {
			"In gardens where the {flower} grow,\nLove's {adjective} secrets gently flow.\nWith {adjective} words and tender care,\nWe find our {noun} everywhere.\n\nThrough seasons of both joy and {noun},\nOur hearts dance in love's sweet refrain.\nLike {celestial} that shine above,\nWe're bound together by true love.",
			"Beneath the {adjective} {weather} sky,\nWhere {adjective} dreams learn how to fly,\nLove finds its way through {noun} and space,\nA gentle touch, a warm embrace.\n\nThrough {weather} storms and {adjective} days,\nLove guides us through life's winding maze.\nWith every breath and beating heart,\nWe know we'll never drift apart.",
		},
		domain.LengthLong: {
			"When {celestial} paint the evening sky,\nAnd gentle {weather} whispers by,\nLove blooms like {flower} in the spring,\nA {adjective} and precious thing.\n\nIn {location} where the {flower} grow,\nAnd crystal {noun} gently flow,\nTwo hearts discover what is true,\nA love that's {adjective} through and through.\n\nThrough {weather} storms and sunny days,\nLove lights our path in countless ways.\nWith {adjective} touch and whispered word,\nOur hearts fly free like soaring bird.\n\nSo let us dance in love's sweet light,\nAnd hold each other through the night.\nFor in this love we've come to know,\nOur souls have found their place to grow.",
		},
	},
	"nature": {
		domain.LengthShort: {
			"In {location} where {animal} play,\nNature paints a new display.\nThe {weather} {noun} and {adjective} trees,\nDance together in the breeze.",
			"Beneath the {adjective} {celestial} above,\nNature shows us how to love.\n{Animal} sing their {adjective} song,\nWhere wild {flower} have grown strong.",
			"{Weather} whispers through the {noun},\nWhere ancient {tree} have always been.\nIn every leaf and {flower} bright,\nNature fills the world with light.",
		},
		domain.LengthMedium: {
			"In {location} where {animal} roam free,\nBeneath the shade of {adjective} tree,\nNature weaves her {adjective} spell,\nStories that the {weather} tell.\n\nThe {noun} flows with {adjective} grace,\nReflecting {celestial}'s gentle face.\nWhile {animal} dance in morning dew,\nNature's magic shines right through.",
			"Deep in {location} shadows play,\nWhere {adjective} {tree} hold sway.\n{Celestial} filters through the leaves,\nAs nature's {noun} softly weaves.\n\nThe {weather} {noun} tells stories old,\nOf seasons past and legends told.\nWhile {animal} dance through morning mist,\nBy nature's {adjective} hand are kissed.",
		},
		domain.LengthLong: {
			"In {location} vast and wild and free,\nWhere {animal} roam beside the sea,\nNature paints with {adjective} hand,\nAcross this {adjective} wonderland.\n\nThe {weather} sings through {tree} tall,\nWhile {flower} bloom for one and all.\n{Animal} call from {noun} deep,\nWhere ancient secrets nature keeps.\n\n{Celestial} dance across the sky,\nAs gentle {weather} breezes sigh.\nIn every stone and grain of sand,\nWe see the work of nature's hand.\n\nFrom {location} high to valleys low,\nNature's {adjective} wonders grow.\nA world of beauty, wild and free,\nNature's perfect symphony.",
		},
	},
	"dreams": {
		domain.LengthShort: {
			"In dreams where {adjective} {animal} fly,\nBeneath the {weather} {celestial} sky.\nHope and wonder intertwine,\nIn realms both {adjective} and divine.",
			"When {noun} falls and day is done,\nAnd dreams begin their {adjective} run,\nWe journey to a world unknown,\nWhere {adjective} seeds are freely sown.",
			"Close your {body_part} and drift away,\nTo where dreams hold {adjective} sway.\nBeyond the boundaries of {noun},\nWhere {adjective} meets the sublime.",
		},
		domain.LengthMedium: {
			"In castles built of {adjective} light,\nWe wander through the {weather} night.\nWhere {animal} speak and {flower} sing,\nAnd {noun} can do most anything.\n\nThrough gardens of the sleeping mind,\nWe leave our {adjective} cares behind.\nAnd in this realm of pure delight,\nOur spirits soar throughout the night.",
			"When {celestial} begin to fade,\nAnd dreamy {noun} are softly made,\nWe sail on {weather} winds so high,\nAcross the {adjective} dream-filled sky.\n\nIn lands where {adjective} {animal} play,\nAnd {flower} bloom in strange array,\nOur dreams unfold like {noun} bright,\nGuiding us through the night.",
		},
		domain.LengthLong: {
			"In realm where {adjective} dreams take flight,\nBeyond the veil of day and night,\nWhere {animal} dance on {weather} air,\nAnd {flower} bloom beyond compare.\n\nThrough {location} of the sleeping mind,\nWhere {adjective} treasures we can find,\n{Celestial} guide our spirits free,\nTo lands of {noun} and mystery.\n\nIn dreams we ride on {weather} wings,\nWhere every {noun} softly sings,\nAnd {adjective} castles touch the sky,\nWhere hopes and wishes never die.\n\nSo dream, dear soul, and do not fear,\nFor in your dreams, all truth is clear.\nA world where {noun} and joy run free,\nAnd you can be all you can be.",
		},
	},
}

// customTemplates cover any theme the curated categories miss.
// The {theme} placeholder embeds the caller's theme verbatim.
var customTemplates = map[domain.PoemLength][]string{
	domain.LengthShort: {
		"Upon the theme of \"{theme}\" I write,\nWith words that dance in {adjective} light.\nInspiration flows like morning dew,\nCreating verses fresh and new.",
		"In contemplation of \"{theme}\" so bright,\nI weave these words with pure delight.\nLet {noun} take its winding course,\nAnd poetry flow from creative source.",
		"The beauty of \"{theme}\" unfolds,\nIn {adjective} stories that poet tells.\nWith {noun} and rhythm combined,\nI craft these verses for heart and mind.",
	},
	domain.LengthMedium: {
		"Upon the canvas of \"{theme}\",\nI paint with words a {adjective} dream.\nWhere thoughts and feelings intertwine,\nAnd create something quite divine.\n\nLet metaphors dance through each line,\nAs imagery and rhythm combine.\nTo bring your vision into view,\nA poem crafted just for you.",
		"In realm of \"{theme}\" we explore,\nWhere {adjective} wonders lie in store.\nWith {noun} as our faithful guide,\nWe journey to the other side.\n\nThrough {adjective} paths and winding ways,\nWe discover {noun} that never fades.\nA {adjective} tribute to your theme,\nLike poetry from a {adjective} dream.",
	},
	domain.LengthLong: {
		"In contemplation of \"{theme}\" so bright,\nI weave these words with pure delight.\nLet imagination take its course,\nAnd poetry flow from creative source.\n\nThrough metaphor and imagery clear,\nThe essence of your theme draws near.\nWith rhythm, rhyme, and {adjective} emotion,\nI craft this verse like {noun} potion.\n\nIn every line a {noun} lies,\nBeneath the {weather} painted skies.\nMay these words touch your very soul,\nAnd make your spirit feel more whole.\n\nFor in the art of poetry,\nWe find our shared humanity.\nA {adjective} bridge from heart to heart,\nWhere {noun} and beauty never part.",
	},
}

// categoryKeywords map theme words onto curated template categories.
var categoryKeywords = map[string][]string{
	"love":   {"love", "heart", "romance", "valentine", "relationship"},
	"nature": {"nature", "forest", "tree", "flower", "mountain", "ocean", "river", "bird", "animal"},
	"dreams": {"dream", "sleep", "night", "fantasy", "imagination", "wish"},
}
