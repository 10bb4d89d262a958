package service

import "github.com/aliskhannn/triage-assistant/internal/domain/entities"

// phrasebook holds the fixed wording of generated summaries for one locale.
type phrasebook struct {
	nothingCompleted string
	unspecified      string
	listSep          string // between resolved multi values and clause fields
	complaintSep     string // between per-target clauses of the chief complaint
	descriptionSep   string // between per-target descriptions of the prose summary

	intro          string // name, age, date, time, descriptions
	ofType         string // target name, character
	intensity      string // severity
	onset          string
	duration       string
	timing         string
	radiation      string
	aggravated     string
	relieved       string
	associated     string
	previous       string
	dateLayout     string
	timeLayout     string
	severitySuffix string
}

var phrasebooks = map[entities.Locale]phrasebook{
	entities.LocaleFR: {
		nothingCompleted: "Aucune évaluation complétée.",
		unspecified:      "Non précisé",
		listSep:          ", ",
		complaintSep:     " ; ",
		descriptionSep:   ". ",

		intro:          "Patient %s, %d ans, consulte le %s à %s pour %s.",
		ofType:         "%s de type %s",
		intensity:      " d'intensité %d/10",
		onset:          ", à début %s",
		duration:       ", évoluant depuis %s",
		timing:         ", %s",
		radiation:      ", avec irradiation vers %s",
		aggravated:     ", aggravé par %s",
		relieved:       ", soulagé par %s",
		associated:     " Signes associés : %s.",
		previous:       " Épisodes similaires rapportés dans les antécédents.",
		dateLayout:     "02/01/2006",
		timeLayout:     "15:04",
		severitySuffix: "/10",
	},
	entities.LocaleAR: {
		nothingCompleted: "لم يتم إكمال أي تقييم.",
		unspecified:      "غير محدد",
		listSep:          "، ",
		complaintSep:     " ؛ ",
		descriptionSep:   ". ",

		intro:          "المريض %s، %d سنة، يستشير بتاريخ %s على الساعة %s بسبب %s.",
		ofType:         "%s من نوع %s",
		intensity:      " بشدة %d/10",
		onset:          "، بداية %s",
		duration:       "، منذ %s",
		timing:         "، %s",
		radiation:      "، مع انتشار نحو %s",
		aggravated:     "، يزداد مع %s",
		relieved:       "، يخف مع %s",
		associated:     " علامات مصاحبة: %s.",
		previous:       " تم الإبلاغ عن نوبات مماثلة في السوابق.",
		dateLayout:     "02/01/2006",
		timeLayout:     "15:04",
		severitySuffix: "/10",
	},
}

func phrasesFor(l entities.Locale) phrasebook {
	if p, ok := phrasebooks[l]; ok {
		return p
	}
	return phrasebooks[entities.LocaleFR]
}

// NothingCompletedMessage is the text rendered when no assessment is completed.
func NothingCompletedMessage(l entities.Locale) string {
	return phrasesFor(l).nothingCompleted
}

// UnspecifiedPlaceholder is shown for questions left unanswered.
func UnspecifiedPlaceholder(l entities.Locale) string {
	return phrasesFor(l).unspecified
}
