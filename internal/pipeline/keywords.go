package pipeline

// ExcludeKeywords filters out non-game listings by lowercase substring
// containment against the whole event name, not per token ("deposit"
// matches "Season Deposit Plan"). Tuned against real Ticketmaster
// listings around NBA arenas.
var ExcludeKeywords = []string{
	"voucher",
	"suite pass",
	"post game",
	"item",
	"educator",
	"access only",
	"gift",
	"discount pass",
	"tour experience",
	" tour",
	"arena tour",
	"deposit",
	" offer",
	"testing",
	"halftime",
	"prospect deposit",
	"club deposit",
	"member offer",
	"member drop",
	"add on",
	"tshirt",
	"t-shirt",
	"dream team",
	"group deposit",
	"levy ticket",
	"season ticket",
}
