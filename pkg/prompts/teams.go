// Package prompts builds the instruction blocks sent to the text-generation
// capability.
package prompts

// TeamEntry maps one franchise to its abbreviation, with the city and
// nickname aliases users actually type.
type TeamEntry struct {
	Abbreviation string
	Name         string
	Aliases      []string
}

// TeamDictionary is the closed team-name dictionary enumerated in the
// translation prompt. Every franchise appears with its nicknames and city
// names so the model maps free text onto abbreviations instead of inventing
// its own.
var TeamDictionary = []TeamEntry{
	{Abbreviation: "ATL", Name: "Atlanta Hawks", Aliases: []string{"hawks", "atlanta"}},
	{Abbreviation: "BOS", Name: "Boston Celtics", Aliases: []string{"celtics", "boston"}},
	{Abbreviation: "BKN", Name: "Brooklyn Nets", Aliases: []string{"nets", "brooklyn"}},
	{Abbreviation: "CHA", Name: "Charlotte Hornets", Aliases: []string{"hornets", "charlotte"}},
	{Abbreviation: "CHI", Name: "Chicago Bulls", Aliases: []string{"bulls", "chicago"}},
	{Abbreviation: "CLE", Name: "Cleveland Cavaliers", Aliases: []string{"cavaliers", "cavs", "cleveland"}},
	{Abbreviation: "DAL", Name: "Dallas Mavericks", Aliases: []string{"mavericks", "mavs", "dallas"}},
	{Abbreviation: "DEN", Name: "Denver Nuggets", Aliases: []string{"nuggets", "denver"}},
	{Abbreviation: "DET", Name: "Detroit Pistons", Aliases: []string{"pistons", "detroit"}},
	{Abbreviation: "GSW", Name: "Golden State Warriors", Aliases: []string{"warriors", "golden state", "dubs"}},
	{Abbreviation: "HOU", Name: "Houston Rockets", Aliases: []string{"rockets", "houston"}},
	{Abbreviation: "IND", Name: "Indiana Pacers", Aliases: []string{"pacers", "indiana"}},
	{Abbreviation: "LAC", Name: "Los Angeles Clippers", Aliases: []string{"clippers", "la clippers"}},
	{Abbreviation: "LAL", Name: "Los Angeles Lakers", Aliases: []string{"lakers", "la lakers", "los angeles"}},
	{Abbreviation: "MEM", Name: "Memphis Grizzlies", Aliases: []string{"grizzlies", "memphis"}},
	{Abbreviation: "MIA", Name: "Miami Heat", Aliases: []string{"heat", "miami"}},
	{Abbreviation: "MIL", Name: "Milwaukee Bucks", Aliases: []string{"bucks", "milwaukee"}},
	{Abbreviation: "MIN", Name: "Minnesota Timberwolves", Aliases: []string{"timberwolves", "wolves", "minnesota"}},
	{Abbreviation: "NOP", Name: "New Orleans Pelicans", Aliases: []string{"pelicans", "pels", "new orleans"}},
	{Abbreviation: "NYK", Name: "New York Knicks", Aliases: []string{"knicks", "new york"}},
	{Abbreviation: "OKC", Name: "Oklahoma City Thunder", Aliases: []string{"thunder", "oklahoma city"}},
	{Abbreviation: "ORL", Name: "Orlando Magic", Aliases: []string{"magic", "orlando"}},
	{Abbreviation: "PHI", Name: "Philadelphia 76ers", Aliases: []string{"76ers", "sixers", "philadelphia", "philly"}},
	{Abbreviation: "PHX", Name: "Phoenix Suns", Aliases: []string{"suns", "phoenix"}},
	{Abbreviation: "POR", Name: "Portland Trail Blazers", Aliases: []string{"trail blazers", "blazers", "portland"}},
	{Abbreviation: "SAC", Name: "Sacramento Kings", Aliases: []string{"kings", "sacramento"}},
	{Abbreviation: "SAS", Name: "San Antonio Spurs", Aliases: []string{"spurs", "san antonio"}},
	{Abbreviation: "TOR", Name: "Toronto Raptors", Aliases: []string{"raptors", "raps", "toronto"}},
	{Abbreviation: "UTA", Name: "Utah Jazz", Aliases: []string{"jazz", "utah"}},
	{Abbreviation: "WAS", Name: "Washington Wizards", Aliases: []string{"wizards", "washington"}},
}
