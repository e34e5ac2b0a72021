package persona

import "fmt"

// Preset names.
const (
	Romandie   = "romandie"
	Alemanique = "alemanique"
)

// schemaBlock is shared by both prompts; the label placeholder receives
// the persona's risk vocabulary.
const schemaBlock = `{
  "score": 65,
  "risk_level": "%s",
  "summary": "...",
  "missing_keywords": ["...", "..."],
  "recommendations": ["...", "..."]
}`

var romandiePrompt = `Tu es un recruteur expert du marché suisse romand (Genève, Vaud, Neuchâtel, Fribourg, Valais, Jura).
Ton rôle est d'analyser un CV pour le filtrage ATS.

RÈGLE D'OR : RÉPONDS UNIQUEMENT EN FRANÇAIS.

LIMITATION TECHNIQUE :
Tu reçois le texte brut. Tu ne vois PAS les images.
Ne mentionne PAS l'absence de photo sauf si écrit "Pas de photo".

CRITÈRES SUISSES ROMANDS :
1. Permis de travail (B/C/G) ou Nationalité Suisse/UE (Critique).
2. Langues :
   - Français : Indispensable.
   - Anglais : Souvent demandé.
   - Allemand : C'est un ATOUT (un plus), mais PAS rédhibitoire pour la Suisse Romande. Valorise-le s'il est là, mais ne pénalise pas fortement son absence.
3. Localisation : Compatible avec la Suisse Romande ?

FORMAT JSON ATTENDU (score = NOMBRE ENTIER SUR 100) :
` + fmt.Sprintf(schemaBlock, "faible/moyen/élevé")

var alemaniquePrompt = `Du bist ein erfahrener Recruiter für den Deutschschweizer Arbeitsmarkt (Zürich, Bern, Basel, Zentralschweiz, Ostschweiz).
Deine Aufgabe ist die ATS-Analyse eines Lebenslaufs.

GOLDENE REGEL: ANTWORTE AUSSCHLIESSLICH AUF DEUTSCH.

TECHNISCHE EINSCHRÄNKUNG:
Du erhältst nur den Rohtext. Du siehst KEINE Bilder.
Erwähne ein fehlendes Foto NICHT, ausser es steht explizit "Kein Foto".

DEUTSCHSCHWEIZER KRITERIEN:
1. Arbeitsbewilligung (B/C/G) oder Schweizer/EU-Staatsangehörigkeit (kritisch).
2. Sprachen:
   - Deutsch: Unverzichtbar.
   - Englisch: Oft verlangt.
   - Französisch: Ein PLUS, aber kein Ausschlusskriterium für die Deutschschweiz.
3. Standort: Kompatibel mit der Deutschschweiz?

ERWARTETES JSON-FORMAT (score = GANZE ZAHL VON 100):
` + fmt.Sprintf(schemaBlock, "tief/mittel/hoch")

var presets = map[string]Config{
	Romandie: {
		Name:            Romandie,
		SystemPrompt:    romandiePrompt,
		UserPreamble:    "Analyse ce CV (RÉPONDRE EN FRANÇAIS) :",
		RiskLevels:      []string{"faible", "moyen", "élevé"},
		SubjectTemplate: "Votre Analyse CV Suisse (%d/100)",
		Branding: Branding{
			Title:           "Rapport ATS Suisse 🇨🇭",
			Tagline:         "Spécial Suisse Romande",
			PrimaryColor:    "#d90429",
			SummaryHeading:  "En résumé",
			ScoreCaption:    "Score Global",
			IssuesHeading:   "⚠️ À corriger",
			AdviceHeading:   "💡 Conseils",
			CTAHeading:      "Besoin d'aide pour atteindre 100/100 ?",
			CTABody:         "Votre CV a du potentiel. Nous pouvons vous aider à optimiser chaque détail pour décrocher des entretiens en Suisse Romande.",
			CTALabel:        "👉 Réserver un Coaching CV",
			CTAURL:          "https://readyforswiss.ch/products/coaching-cv",
			FooterLabel:     "Généré par l'IA Ready for Swiss",
			DeliveredBanner: "✅ Rapport envoyé à %s",
			FallbackBanner:  "⚠️ Note : Email bloqué par le réseau, mais voici le résultat :",
		},
	},
	Alemanique: {
		Name:            Alemanique,
		SystemPrompt:    alemaniquePrompt,
		UserPreamble:    "Analysiere diesen Lebenslauf (AUF DEUTSCH ANTWORTEN):",
		RiskLevels:      []string{"tief", "mittel", "hoch"},
		SubjectTemplate: "Ihre Schweizer CV-Analyse (%d/100)",
		Branding: Branding{
			Title:           "ATS-Report Schweiz 🇨🇭",
			Tagline:         "Spezial Deutschschweiz",
			PrimaryColor:    "#1d4ed8",
			SummaryHeading:  "Zusammenfassung",
			ScoreCaption:    "Gesamtscore",
			IssuesHeading:   "⚠️ Zu korrigieren",
			AdviceHeading:   "💡 Empfehlungen",
			CTAHeading:      "Hilfe auf dem Weg zu 100/100?",
			CTABody:         "Ihr Lebenslauf hat Potenzial. Wir optimieren jedes Detail, damit Sie in der Deutschschweiz zu Interviews eingeladen werden.",
			CTALabel:        "👉 CV-Coaching buchen",
			CTAURL:          "https://readyforswiss.ch/products/cv-coaching-de",
			FooterLabel:     "Erstellt von der Ready for Swiss KI",
			DeliveredBanner: "✅ Report gesendet an %s",
			FallbackBanner:  "⚠️ Hinweis: E-Mail wurde blockiert, hier ist Ihr Resultat:",
		},
	},
}

// Preset returns a named persona. The boolean is false for unknown names;
// callers fall back to their configured default.
func Preset(name string) (Config, bool) {
	p, ok := presets[name]
	return p, ok
}

// Names lists the available presets.
func Names() []string {
	return []string{Romandie, Alemanique}
}
