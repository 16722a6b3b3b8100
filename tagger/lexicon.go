package tagger

// lexicon maps lowercase closed-class words and common suffix-rule
// exceptions to Penn Treebank tags.
var lexicon = map[string]string{
	// Determiners
	"the": "DT", "a": "DT", "an": "DT", "this": "DT", "that": "DT", "these": "DT",
	"those": "DT", "each": "DT", "every": "DT", "some": "DT", "any": "DT", "no": "DT",
	"all": "DT", "both": "DT", "either": "DT", "neither": "DT", "another": "DT",
	// Prepositions and subordinating conjunctions
	"of": "IN", "in": "IN", "on": "IN", "at": "IN", "by": "IN", "for": "IN",
	"with": "IN", "from": "IN", "into": "IN", "onto": "IN", "over": "IN", "under": "IN",
	"about": "IN", "above": "IN", "below": "IN", "between": "IN", "among": "IN",
	"through": "IN", "during": "IN", "before": "IN", "after": "IN", "against": "IN",
	"without": "IN", "within": "IN", "along": "IN", "across": "IN", "behind": "IN",
	"beyond": "IN", "upon": "IN", "via": "IN", "per": "IN", "than": "IN", "as": "IN",
	"if": "IN", "whether": "IN", "because": "IN", "since": "IN", "although": "IN",
	"though": "IN", "while": "IN", "unless": "IN", "until": "IN", "like": "IN",
	"to": "TO",
	// Coordinating conjunctions
	"and": "CC", "or": "CC", "but": "CC", "nor": "CC", "yet": "CC",
	// Pronouns
	"i": "PRP", "you": "PRP", "he": "PRP", "she": "PRP", "it": "PRP", "we": "PRP",
	"they": "PRP", "me": "PRP", "him": "PRP", "us": "PRP", "them": "PRP",
	"itself": "PRP", "themselves": "PRP", "one": "CD",
	"my": "PRP$", "your": "PRP$", "his": "PRP$", "her": "PRP$", "its": "PRP$",
	"our": "PRP$", "their": "PRP$",
	// Wh-words
	"which": "WDT", "who": "WP", "whom": "WP", "what": "WP", "whose": "WP$",
	"when": "WRB", "where": "WRB", "why": "WRB", "how": "WRB",
	// Modals
	"can": "MD", "could": "MD", "may": "MD", "might": "MD", "must": "MD",
	"shall": "MD", "should": "MD", "will": "MD", "would": "MD", "cannot": "MD",
	// Auxiliaries and frequent irregular verbs
	"be": "VB", "is": "VBZ", "are": "VBP", "am": "VBP", "was": "VBD", "were": "VBD",
	"been": "VBN", "being": "VBG", "have": "VBP", "has": "VBZ", "had": "VBD",
	"do": "VBP", "does": "VBZ", "did": "VBD", "done": "VBN", "given": "VBN",
	"used": "VBN", "made": "VBN", "known": "VBN", "shown": "VBN", "taken": "VBN",
	"seen": "VBN", "found": "VBN", "get": "VB", "make": "VB", "arise": "VB",
	"expect": "VB", "reaches": "VBZ", "asked": "VBN", "stated": "VBN",
	// Adverbs
	"not": "RB", "also": "RB", "very": "RB", "too": "RB", "only": "RB", "just": "RB",
	"then": "RB", "here": "RB", "now": "RB", "moreover": "RB", "however": "RB",
	"thus": "RB", "hence": "RB", "therefore": "RB", "often": "RB", "always": "RB",
	"never": "RB", "again": "RB", "still": "RB", "even": "RB", "well": "RB",
	"rather": "RB", "quite": "RB", "almost": "RB", "so": "RB", "further": "RB",
	"there": "EX",
	// Common adjectives without a telltale suffix
	"new": "JJ", "old": "JJ", "good": "JJ", "great": "JJ", "high": "JJ", "low": "JJ",
	"large": "JJ", "small": "JJ", "big": "JJ", "long": "JJ", "short": "JJ",
	"strong": "JJ", "weak": "JJ", "main": "JJ", "strict": "JJ", "abstract": "JJ",
	"upper": "JJ", "lower": "JJ", "whole": "JJ", "real": "JJ", "same": "JJ",
	"different": "JJ", "other": "JJ", "many": "JJ", "several": "JJ", "few": "JJ",
	"various": "JJ", "certain": "JJ", "such": "JJ", "first": "JJ", "last": "JJ",
	"mixed": "JJ", "inherent": "JJ", "more": "JJR", "most": "JJS", "less": "JJR",
	"least": "JJS",
	// Nouns that the suffix rules would mis-tag
	"topic": "NN", "logic": "NN", "music": "NN", "traffic": "NN", "proposal": "NN",
	"approval": "NN", "interval": "NN", "signal": "NN", "animal": "NN",
	"hospital": "NN", "capital": "NN", "thing": "NN", "something": "NN",
	"nothing": "NN", "anything": "NN", "everything": "NN", "string": "NN",
	"meaning": "NN", "speed": "NN", "seed": "NN", "grammar": "NN", "calendar": "NN",
	"seminar": "NN", "news": "NN", "series": "NN", "species": "NN", "sense": "NN",
}

// suffixRule tags words ending in suffix that have at least minRunes runes.
type suffixRule struct {
	suffix   string
	minRunes int
	tag      string
}

// suffixRules are tried in order; the first match wins.
var suffixRules = []suffixRule{
	{"ly", 5, "RB"},
	{"ing", 6, "VBG"},
	{"ed", 5, "VBN"},
	{"ous", 5, "JJ"},
	{"ful", 5, "JJ"},
	{"ive", 5, "JJ"},
	{"able", 6, "JJ"},
	{"ible", 6, "JJ"},
	{"less", 6, "JJ"},
	{"ical", 6, "JJ"},
	{"ic", 5, "JJ"},
	{"al", 5, "JJ"},
	{"ary", 6, "JJ"},
	{"ish", 6, "JJ"},
	{"ar", 6, "JJ"},
}
