// messages.go contains message templates for the terminal front end.

package terminal

import "github.com/aliskhannn/triage-assistant/internal/domain/entities"

type messages struct {
	welcome          string
	help             string
	zones            string
	symptoms         string
	pickTarget       string
	targetNotFound   string
	noActiveTarget   string
	required         string
	cannotGoBack     string
	invalidAnswer    string
	hintSelect       string
	hintMulti        string
	hintScale        string
	hintNumber       string
	hintText         string
	hintOptional     string
	completed        string
	flowReset        string
	alreadyCompleted string
	noAssessments    string
	removed          string
	notRemoved       string
	cleared          string
	exported         string
	exportUsage      string
	unknownFormat    string
	unknownLocale    string
	localeChanged    string
	unknownCommand   string
	internalError    string
	askName          string
	askAge           string
	invalidAge       string
	intakeDone       string
	status           string
	statusIdle       string
	bye              string
}

var messageTables = map[entities.Locale]messages{
	entities.LocaleFR: {
		welcome: "🩺 Assistant de pré-consultation\nDécrivez vos symptômes zone par zone, le résumé sera transmis au médecin.",
		help: `Commandes :
/targets [zone|symptom]  liste des zones et symptômes
/start <id>              commencer l'évaluation d'une zone ou d'un symptôme
/next ou Entrée          question suivante
/back                    question précédente
/reset                   recommencer l'évaluation en cours
/status                  état de l'évaluation en cours
/assessments             évaluations terminées
/remove <id>             supprimer une évaluation
/clear                   tout effacer
/summary [text|markdown|html]  résumé clinique
/export <fichier>        exporter les évaluations en JSON
/lang [fr|ar]            changer de langue
/quit                    quitter
Toute autre saisie répond à la question affichée.`,
		zones:            "Zones du corps",
		symptoms:         "Symptômes",
		pickTarget:       "Choisissez une zone ou un symptôme avec /start <id>, ou tapez son nom.",
		targetNotFound:   "Zone ou symptôme inconnu : %s",
		noActiveTarget:   "Aucune évaluation en cours. Choisissez une zone avec /start <id>.",
		required:         "Cette question est obligatoire.",
		cannotGoBack:     "Impossible de revenir en arrière.",
		invalidAnswer:    "Réponse non reconnue.",
		hintSelect:       "Tapez le numéro ou le nom d'une option.",
		hintMulti:        "Tapez un ou plusieurs numéros séparés par des virgules.",
		hintScale:        "Tapez un nombre de 0 à 10.",
		hintNumber:       "Tapez un nombre.",
		hintText:         "Tapez votre réponse.",
		hintOptional:     "Entrée pour passer.",
		completed:        "✅ Évaluation enregistrée : %s",
		flowReset:        "Évaluation recommencée.",
		alreadyCompleted: "Cette évaluation est terminée. /start <id> pour en commencer une autre.",
		noAssessments:    "Aucune évaluation complétée.",
		removed:          "Évaluation supprimée : %s",
		notRemoved:       "Aucune évaluation pour : %s",
		cleared:          "Toutes les évaluations ont été effacées.",
		exported:         "Évaluations exportées dans %s",
		exportUsage:      "Utilisation : /export <fichier.json>",
		unknownFormat:    "Format inconnu : %s (text, markdown, html)",
		unknownLocale:    "Langue non prise en charge : %s (fr, ar)",
		localeChanged:    "Langue : français",
		unknownCommand:   "Commande inconnue. /help pour la liste des commandes.",
		internalError:    "Une erreur est survenue. Réessayez.",
		askName:          "Quel est votre nom ?",
		askAge:           "Quel est votre âge ?",
		invalidAge:       "Âge invalide. Tapez un nombre entre 0 et 150.",
		intakeDone:       "Merci %s.",
		status:           "%s : question %d sur %d, %d réponse(s)",
		statusIdle:       "Aucune évaluation en cours. %d évaluation(s) terminée(s).",
		bye:              "Au revoir.",
	},
	entities.LocaleAR: {
		welcome: "🩺 مساعد ما قبل الاستشارة\nصف أعراضك منطقة بمنطقة، وسيتم إرسال الملخص إلى الطبيب.",
		help: `الأوامر:
/targets [zone|symptom]  قائمة المناطق والأعراض
/start <id>              بدء تقييم منطقة أو عرض
/next أو Enter           السؤال التالي
/back                    السؤال السابق
/reset                   إعادة التقييم الحالي
/status                  حالة التقييم الحالي
/assessments             التقييمات المكتملة
/remove <id>             حذف تقييم
/clear                   مسح الكل
/summary [text|markdown|html]  الملخص السريري
/export <file>           تصدير التقييمات بصيغة JSON
/lang [fr|ar]            تغيير اللغة
/quit                    خروج
أي إدخال آخر يجيب على السؤال المعروض.`,
		zones:            "مناطق الجسم",
		symptoms:         "الأعراض",
		pickTarget:       "اختر منطقة أو عرضاً باستخدام /start <id> أو اكتب اسمه.",
		targetNotFound:   "منطقة أو عرض غير معروف: %s",
		noActiveTarget:   "لا يوجد تقييم جارٍ. اختر منطقة باستخدام /start <id>.",
		required:         "هذا السؤال إلزامي.",
		cannotGoBack:     "لا يمكن الرجوع.",
		invalidAnswer:    "إجابة غير معروفة.",
		hintSelect:       "اكتب رقم الخيار أو اسمه.",
		hintMulti:        "اكتب رقماً أو أكثر مفصولة بفواصل.",
		hintScale:        "اكتب رقماً من 0 إلى 10.",
		hintNumber:       "اكتب رقماً.",
		hintText:         "اكتب إجابتك.",
		hintOptional:     "اضغط Enter للتخطي.",
		completed:        "✅ تم حفظ التقييم: %s",
		flowReset:        "تمت إعادة التقييم.",
		alreadyCompleted: "هذا التقييم مكتمل. استخدم /start <id> لبدء تقييم آخر.",
		noAssessments:    "لم يتم إكمال أي تقييم.",
		removed:          "تم حذف التقييم: %s",
		notRemoved:       "لا يوجد تقييم لـ: %s",
		cleared:          "تم مسح جميع التقييمات.",
		exported:         "تم تصدير التقييمات إلى %s",
		exportUsage:      "الاستخدام: /export <file.json>",
		unknownFormat:    "صيغة غير معروفة: %s (text, markdown, html)",
		unknownLocale:    "لغة غير مدعومة: %s (fr, ar)",
		localeChanged:    "اللغة: العربية",
		unknownCommand:   "أمر غير معروف. /help لقائمة الأوامر.",
		internalError:    "حدث خطأ. حاول مرة أخرى.",
		askName:          "ما اسمك؟",
		askAge:           "كم عمرك؟",
		invalidAge:       "عمر غير صالح. اكتب رقماً بين 0 و 150.",
		intakeDone:       "شكراً %s.",
		status:           "%s: السؤال %d من %d، %d إجابة",
		statusIdle:       "لا يوجد تقييم جارٍ. %d تقييم مكتمل.",
		bye:              "مع السلامة.",
	},
}

func msgs(l entities.Locale) messages {
	if m, ok := messageTables[l]; ok {
		return m
	}
	return messageTables[entities.LocaleFR]
}
