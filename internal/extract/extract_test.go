package extract

import (
	"errors"
	"regexp"
	"testing"

	"github.com/matsen/renamepdf/internal/bib"
	"github.com/matsen/renamepdf/internal/textsource"
	"github.com/matsen/renamepdf/internal/venue"
)

func fixture(meta map[string]string, pageLines ...string) *textsource.Document {
	if meta == nil {
		meta = map[string]string{}
	}
	return &textsource.Document{Meta: meta, PageLines: pageLines}
}

// classify + extract, the way process runs them.
func runOn(t *testing.T, doc *textsource.Document) *bib.Record {
	t.Helper()
	m, err := venue.Classify(doc)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	rec, err := Run(doc, m)
	if err != nil {
		t.Fatalf("Run(%s): %v", m.Key, err)
	}
	return rec
}

func wantField(t *testing.T, name string, f bib.Field, want string) {
	t.Helper()
	if !f.IsSet() {
		t.Errorf("%s unset, want %q", name, want)
		return
	}
	if f.Value() != want {
		t.Errorf("%s = %q, want %q", name, f.Value(), want)
	}
}

func TestLinguaRoundTrip(t *testing.T) {
	doc := fixture(map[string]string{"Subject": "Lingua 123 (2013) 45–67"},
		"Lingua 123 (2013) 45–67",
		"",
		"Contents lists available at ScienceDirect",
		"",
		"The syntax of focus particles",
		"",
		"Jane Doe*, John Smith1",
		"",
		"http://dx.doi.org/10.1016/j.lingua.2013.01.001",
	)

	rec := runOn(t, doc)
	wantField(t, "volume", rec.Volume, "123")
	wantField(t, "year", rec.Year, "2013")
	wantField(t, "pageStart", rec.PageStart, "45")
	wantField(t, "pageEnd", rec.PageEnd, "67")
	wantField(t, "title", rec.Title, "The syntax of focus particles")
	wantField(t, "doi", rec.DOI, "10.1016/j.lingua.2013.01.001")
	if len(rec.Authors) != 2 || rec.Authors[0] != "Jane Doe" || rec.Authors[1] != "John Smith" {
		t.Errorf("authors = %v", rec.Authors)
	}
	// Issue-less journal: number is explicitly empty, not unset.
	if !rec.Number.IsSet() || rec.Number.Value() != "" {
		t.Errorf("number = %+v, want explicitly empty", rec.Number)
	}
}

func TestJSTOR(t *testing.T) {
	doc := fixture(nil,
		"The Minimalist Program and its Prospects",
		"Author(s): Jane Doe and John Smith",
		"Source: Linguistic Inquiry, Vol. 26, No. 4 (Autumn, 1995), pp. 601-626",
		"Published by: The MIT Press",
		"Stable URL: https://www.jstor.org/stable/4178917",
	)

	rec := runOn(t, doc)
	wantField(t, "journaltitle", rec.JournalTitle, "Linguistic Inquiry")
	wantField(t, "shortjournaltitle", rec.ShortJournalTitle, "LI")
	wantField(t, "volume", rec.Volume, "26")
	wantField(t, "number", rec.Number, "4")
	wantField(t, "year", rec.Year, "1995")
	wantField(t, "pageStart", rec.PageStart, "601")
	wantField(t, "pageEnd", rec.PageEnd, "626")
	wantField(t, "title", rec.Title, "The Minimalist Program and its Prospects")
	wantField(t, "doi", rec.DOI, "")
	if len(rec.Authors) != 2 {
		t.Errorf("authors = %v", rec.Authors)
	}
}

func TestBBSFencedAuthors(t *testing.T) {
	doc := fixture(nil,
		"BEHAVIORAL AND BRAIN SCIENCES (2009) 32, 429 –448",
		"doi:10.1017/S0140525X0999094X",
		"",
		"The myth of language universals",
		"",
		"Nicholas Evans",
		"",
		"Stephen C. Levinson",
		"",
		"Abstract: Talk of linguistic universals has given cognitive scientists the impression...",
	)

	rec := runOn(t, doc)
	wantField(t, "year", rec.Year, "2009")
	wantField(t, "volume", rec.Volume, "32") // derived: year − 1977
	wantField(t, "pageStart", rec.PageStart, "429")
	wantField(t, "pageEnd", rec.PageEnd, "448")
	wantField(t, "title", rec.Title, "The myth of language universals")
	wantField(t, "doi", rec.DOI, "10.1017/S0140525X0999094X")
	if len(rec.Authors) != 2 || rec.Authors[0] != "Nicholas Evans" || rec.Authors[1] != "Stephen C. Levinson" {
		t.Errorf("authors = %v", rec.Authors)
	}
}

func TestGlossaCitationBlock(t *testing.T) {
	doc := fixture(nil,
		"GLOSSA",
		"",
		"TO CITE THIS ARTICLE:",
		"Lau, Elaine and Nozomi Tanaka. 2021. The subject advantage in ",
		"relative clauses: A review. Glossa: a journal of general linguistics ",
		"6(1): 34. 1–34. DOI: https://doi.org/10.5334/gjgl.1343",
		"",
	)

	rec := runOn(t, doc)
	wantField(t, "year", rec.Year, "2021")
	wantField(t, "title", rec.Title, "The subject advantage in relative clauses: A review")
	wantField(t, "volume", rec.Volume, "6")
	wantField(t, "number", rec.Number, "1")
	wantField(t, "eid", rec.EID, "34")
	wantField(t, "pageStart", rec.PageStart, "1")
	wantField(t, "pageEnd", rec.PageEnd, "34")
	wantField(t, "doi", rec.DOI, "10.5334/gjgl.1343")
	if len(rec.Authors) != 2 || rec.Authors[0] != "Lau, Elaine" || rec.Authors[1] != "Nozomi Tanaka" {
		t.Errorf("authors = %v", rec.Authors)
	}
}

func TestTheoreticalLinguisticsLayouts(t *testing.T) {
	t.Run("post-2014 anchored", func(t *testing.T) {
		doc := fixture(map[string]string{
			"Subject": "Theoretical Linguistics 2016; 42(3–4): 201 – 226",
		},
			"Theoretical Linguistics 2016; 42(3–4): 201 – 226",
			"",
			"Jane Doe*",
			"Commentary on copy theory",
			"",
			"https://doi.org/10.1515/tl-2016-0008",
		)
		rec := runOn(t, doc)
		wantField(t, "year", rec.Year, "2016")
		wantField(t, "number", rec.Number, "3–4")
		wantField(t, "title", rec.Title, "Commentary on copy theory")
		if len(rec.Authors) != 1 || rec.Authors[0] != "Jane Doe" {
			t.Errorf("authors = %v", rec.Authors)
		}
	})

	t.Run("pre-2014 fenced", func(t *testing.T) {
		doc := fixture(map[string]string{
			"Subject": "Theoretical Linguistics 2010; 36(1): 1 – 24",
		},
			"Masthead line",
			"",
			"A title that wraps",
			"across two lines",
			"",
			"Jane Doe and John Smith",
			"",
			"Abstract",
		)
		rec := runOn(t, doc)
		wantField(t, "year", rec.Year, "2010")
		wantField(t, "title", rec.Title, "A title that wraps across two lines")
		if len(rec.Authors) != 2 {
			t.Errorf("authors = %v", rec.Authors)
		}
	})
}

func TestSpringerHeader(t *testing.T) {
	doc := fixture(map[string]string{"Subject": "Nat Lang Linguist Theory (2019) 37:123–156"},
		"Nat Lang Linguist Theory (2019) 37:123–156",
		"https://doi.org/10.1007/s11049-018-9403-6",
		"",
		"Strong pronouns in Germanic dialects",
		"",
		"Jane Doe1 · John Smith2",
		"",
		"Received: 1 May 2017 / Accepted: 3 June 2018",
	)

	m, err := venue.Classify(doc)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if m.Key != venue.NLLT {
		t.Fatalf("Key = %q, want nllt", m.Key)
	}
	rec, err := Run(doc, m)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	wantField(t, "year", rec.Year, "2019")
	wantField(t, "volume", rec.Volume, "37")
	wantField(t, "pageStart", rec.PageStart, "123")
	wantField(t, "pageEnd", rec.PageEnd, "156")
	wantField(t, "title", rec.Title, "Strong pronouns in Germanic dialects")
	wantField(t, "doi", rec.DOI, "10.1007/s11049-018-9403-6")
	if len(rec.Authors) != 2 || rec.Authors[0] != "Jane Doe" {
		t.Errorf("authors = %v", rec.Authors)
	}
}

func TestSpringerEarlyAccess(t *testing.T) {
	doc := fixture(map[string]string{
		"Subject": "Nat Lang Linguist Theory early access",
		"Title":   "Pronouns before print",
	},
		"Natural Language & Linguistic Theory",
		"https://doi.org/10.1007/s11049-023-9999-1",
		"",
		"Pronouns before print",
		"",
		"Jane Doe",
		"",
		"Received: 1 May 2022 / Accepted: 3 June 2023",
	)

	rec := runOn(t, doc)
	wantField(t, "year", rec.Year, "2023")
	// No volume assignment yet: explicitly empty, not a failure.
	if !rec.Volume.IsSet() || rec.Volume.Value() != "" {
		t.Errorf("volume = %+v, want explicitly empty", rec.Volume)
	}
	wantField(t, "title", rec.Title, "Pronouns before print")
}

func TestLangSciEditedVolume(t *testing.T) {
	doc := fixture(nil,
		"Studies in Diversity Linguistics 23",
		"",
		"The verb in Nivkh",
		"",
		"Edited by",
		"Jane Doe",
		"John Smith",
		"",
		"© 2019, Language Science Press",
	)

	rec := runOn(t, doc)
	if rec.Type != bib.Collection {
		t.Fatalf("Type = %q, want collection", rec.Type)
	}
	wantField(t, "series", rec.Series, "Studies in Diversity Linguistics")
	wantField(t, "number", rec.Number, "23")
	wantField(t, "title", rec.Title, "The verb in Nivkh")
	wantField(t, "year", rec.Year, "2019")
	wantField(t, "publisher", rec.Publisher, "Language Science Press")
	if len(rec.Editors) != 2 {
		t.Errorf("editors = %v", rec.Editors)
	}
}

func TestLangSciChapter(t *testing.T) {
	doc := fixture(nil,
		"Language Science Press offprint",
		"",
		"Doe, Jane & John Smith. 2019. Aspect in Nivkh. In Anna Jones &",
		"Bob Brown (eds.), The verb in Nivkh, 45–78. Berlin: Language Science Press.",
		"DOI: 10.5281/zenodo.3401234",
	)

	rec := runOn(t, doc)
	if rec.Type != bib.InCollection {
		t.Fatalf("Type = %q, want incollection", rec.Type)
	}
	wantField(t, "title", rec.Title, "Aspect in Nivkh")
	wantField(t, "booktitle", rec.BookTitle, "The verb in Nivkh")
	wantField(t, "year", rec.Year, "2019")
	wantField(t, "pageStart", rec.PageStart, "45")
	wantField(t, "pageEnd", rec.PageEnd, "78")
	wantField(t, "location", rec.Location, "Berlin")
	wantField(t, "doi", rec.DOI, "10.5281/zenodo.3401234")
	if len(rec.Authors) != 2 || len(rec.Editors) != 2 {
		t.Errorf("authors = %v, editors = %v", rec.Authors, rec.Editors)
	}
}

// A Springer page cut short of its masthead block must fail with a
// field error, not crash, so the rest of a batch keeps going.
func TestSpringerShortPageFailsCleanly(t *testing.T) {
	doc := fixture(map[string]string{"Subject": "Nat Lang Linguist Theory (2019) 37:123–156"},
		"Nat Lang Linguist Theory (2019) 37:123–156",
		"Jane Doe1 · John Smith2",
		"Received: 1 May 2017 / Accepted: 3 June 2018",
	)

	m, err := venue.Classify(doc)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	_, err = Run(doc, m)
	var exErr *Error
	if !errors.As(err, &exErr) {
		t.Fatalf("err = %v, want *extract.Error", err)
	}
	if exErr.Venue != venue.NLLT || exErr.Field != "title" {
		t.Errorf("error context = %s/%s, want nllt/title", exErr.Venue, exErr.Field)
	}
}

// One representative first page per venue template; every record must
// come back with a four-digit year, a title and at least one name.
func TestVenueFixtureInvariants(t *testing.T) {
	yearRe := regexp.MustCompile(`^\d{4}$`)

	tests := []struct {
		key string
		doc *textsource.Document
	}{
		{venue.Cognition, fixture(map[string]string{
			"Subject": "Cognition, 219 (2022) 104949",
			"Author":  "Jane Doe, John Smith",
		},
			"Cognition 219 (2022) 104949",
			"",
			"Contents lists available at ScienceDirect",
			"",
			"Cognition",
			"",
			"journal homepage: www.elsevier.com/locate/cognit",
			"",
			"Children's use of syntax in word learning",
			"",
			"https://doi.org/10.1016/j.cognition.2021.104949",
		)},
		{venue.CogSci, fixture(map[string]string{
			"Subject": "Cognitive Science 2021.45:1-28",
			"Title":   "Iterated learning and language evolution",
		},
			"Cognitive Science 2021.45:1-28",
			"",
			"© 2021 Cognitive Science Society",
			"ISSN: 1551-6709 online",
			"Jane Doe, John Smith",
		)},
		{venue.JCGL, fixture(map[string]string{
			"Subject": "Journal of Comparative Germanic Linguistics 24: 49–84, 2021",
			"Title":   "Verb clusters in Continental West Germanic",
			"Author":  "Jane Doe and John Smith",
		},
			"https://doi.org/10.1007/s10828-021-09123-7",
		)},
		{venue.JoL, fixture(map[string]string{
			"Subject": "J. Linguistics 57 (2021), 123–156.",
		},
			"J. Linguistics 57 (2021), 123–156.",
			"",
			"Ellipsis and verb movement1",
			"JANE DOE",
			"",
			"(Received 3 March 2020)",
		)},
		{venue.JGL, fixture(map[string]string{
			"Subject": "Journal ofGermanic Linguistics 33.2 (2021):134-180",
			"Author":  "Jane Doe",
		},
			"Journal ofGermanic Linguistics 33.2 (2021):134-180",
			"",
			"The Low German substrate",
		)},
		{venue.Glossa, fixture(map[string]string{
			"Subject": "Glossa: a journal of general linguistics 2019 4(1): 12. 1-28. 10.5334/gjgl.752",
			"Title":   "The subject advantage in relative clauses",
			"Author":  "Elaine Lau and Nozomi Tanaka",
		},
			"glossa",
		)},
		{venue.JLM, fixture(map[string]string{
			"Subject": "Journal of Language Modelling Vol 5, No 1 (2017), pp. 1–44",
		},
			"Grammatical gender meets",
			"classifier semantics",
			"",
			"Jane Doe1 and John Smith2",
		)},
		{venue.Language, fixture(map[string]string{
			"Subject": "Language, Volume 97, Number 1, March 2021, pp. 39-64",
			"Title":   "Sign language phonology and the brain",
			"Author":  "Jane Doe, John Smith",
		},
			"https://doi.org/10.1353/lan.2021.0001",
		)},
		{venue.LLC, fixture(map[string]string{
			"Title":            "Resumptive pronouns in varieties of English",
			"Author":           "Jane Doe",
			"WPS-ARTICLEDOI":   "10.1111/lnc3.12176",
		},
			"Language and Linguistics Compass",
			"Lang Linguist Compass. 2016; 10: 701–719. wileyonlinelibrary.com/journal/lnc3",
			"",
			"Abstract",
		)},
		{venue.LLC, fixture(map[string]string{
			"Title": "Clefts and their relatives",
		},
			"Language and Linguistics Compass 2/6 (2008): 1024–1038, 10.1111/j.1749-818x.2008.00089.x",
			"Clefts and their relatives",
			"Jane Doe*",
			"Abstract",
		)},
		{venue.LI, fixture(nil,
			"The Syntax of Ellipsis",
			"",
			"Jane Doe",
			"John Smith",
			"",
			"1 Introduction",
			"Body text one",
			"Body text two",
			"Body text three",
			"Body text four",
			"Body text five",
			"Body text six",
			"Body text seven",
			"Body text eight",
			"Body text nine",
			"Body text ten",
			"Body text eleven",
			"Linguistic Inquiry, Volume 41, Number 2, Spring 2010",
			"245–288",
			"© 2010 by the Massachusetts Institute of Technology",
			"Footer one",
			"Footer two",
			"Footer three",
			"Footer four",
			"Footer five",
		)},
		{venue.LingTypology, fixture(map[string]string{
			"Subject": "Linguistic Typology 2017; 21(1): 143–176",
		},
			"Linguistic Typology 2017; 21(1): 143–176",
			"",
			"Jane Doe*",
			"Evidentiality across clause types",
			"",
			"https://doi.org/10.1515/lingty-2017-0005",
		)},
		{venue.Linguistics, fixture(map[string]string{
			"Subject": "Linguistics 2019; 57(3): 653–692",
		},
			"Linguistics 2019; 57(3): 653–692",
			"",
			"Jane Doe and John Smith*",
			"Nominal classification in Amazonia",
			"",
			"https://doi.org/10.1515/ling-2019-0012",
		)},
		{venue.Syntax, fixture(map[string]string{
			"Subject":          "Syntax 24:1, March 2021, 1–38",
			"Title":            "Labeling and intervention",
			"WPS-ARTICLEDOI":   "10.1111/synt.12205",
		},
			"Syntax 24:1, March 2021, 1–38",
			"",
			"Jane Doe and John Smith",
			"Abstract. This article examines labeling.",
		)},
		{venue.TLR, fixture(nil,
			"Gapping and stripping",
			"",
			"JANE DOE AND JOHN SMITH",
			"",
			"Abstract. Gapping constructions show...",
			"The Linguistic Review 31 (2014), 1–39",
		)},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m, err := venue.Classify(tt.doc)
			if err != nil {
				t.Fatalf("Classify: %v", err)
			}
			if m.Key != tt.key {
				t.Fatalf("Key = %q, want %q", m.Key, tt.key)
			}
			rec, err := Run(tt.doc, m)
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if !yearRe.MatchString(rec.Year.Value()) {
				t.Errorf("year = %q, want four digits", rec.Year.Value())
			}
			if rec.Title.Empty() {
				t.Error("title empty")
			}
			if len(rec.Names()) == 0 {
				t.Error("no authors or editors")
			}
		})
	}
}

func TestExtractionFailureCarriesContext(t *testing.T) {
	// Recognized venue, wrong physical layout: Lingua subject but a
	// first page that has no header line.
	doc := fixture(map[string]string{"Subject": "Lingua without numbers"},
		"nothing useful here", "Lingua masthead without a citation line")
	m := venue.Match{Key: venue.Lingua, Signature: "Lingua without numbers"}

	_, err := Run(doc, m)
	var exErr *Error
	if !errors.As(err, &exErr) {
		t.Fatalf("err = %v, want *extract.Error", err)
	}
	if exErr.Venue != venue.Lingua || exErr.Field != "year" {
		t.Errorf("error context = %s/%s", exErr.Venue, exErr.Field)
	}
}

func TestFindDOI(t *testing.T) {
	tests := []struct {
		name string
		ls   []string
		want string
	}{
		{"doi.org URL", []string{"x", "https://doi.org/10.5334/gjgl.100"}, "10.5334/gjgl.100"},
		{"doi: label", []string{"doi:10.1017/S0140525X09990945"}, "10.1017/S0140525X09990945"},
		{"DOI label", []string{"DOI 10.1515/tl-2016-0008"}, "10.1515/tl-2016-0008"},
		{"bare prefix", []string{"10.1162/ling_a_00301"}, "10.1162/ling_a_00301"},
		{"stops at comma", []string{"doi:10.1111/lnc3.12176, online"}, "10.1111/lnc3.12176"},
		{"absent", []string{"no identifier on this page"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := findDOI(tt.ls); got != tt.want {
				t.Errorf("findDOI = %q, want %q", got, tt.want)
			}
		})
	}
}

// Every classifier key must have a registered rule: a match without an
// extractor would be a hole in the dispatch table.
func TestEveryVenueHasExtractor(t *testing.T) {
	if len(Venues()) != len(extractors) {
		t.Fatal("Venues() out of sync with registry")
	}
	for _, key := range []string{
		venue.JSTOR, venue.BBS, venue.Cognition, venue.CogSci, venue.JCGL,
		venue.JoL, venue.JGL, venue.Glossa, venue.GlossaCite, venue.JLM,
		venue.Language, venue.LLC, venue.Lingua, venue.LI, venue.LingTypology,
		venue.Linguistics, venue.NLLT, venue.NLS, venue.Syntax, venue.TLR,
		venue.TheoreticalLng, venue.LangSci,
	} {
		if _, ok := extractors[key]; !ok {
			t.Errorf("no extractor registered for %q", key)
		}
	}
}
