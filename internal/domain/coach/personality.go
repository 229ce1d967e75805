package coach

import (
	"fmt"
	"math/rand"
)

// Personality is the voice used to write a post.
type Personality string

const (
	PersonalityMotivational Personality = "motivacional"
	PersonalitySarcastic    Personality = "sarcastico"
	PersonalityGrandmother  Personality = "abuela"
	PersonalityAnalytical   Personality = "analitico"
)

var allPersonalities = []Personality{
	PersonalityMotivational,
	PersonalitySarcastic,
	PersonalityGrandmother,
	PersonalityAnalytical,
}

// pickPersonality forces the tone for targeted problem posts, rolls a
// uniform random one for plain absences, and keeps every achievement post
// motivational.
func pickPersonality(kind Kind, problem ProblemCategory, rng *rand.Rand) Personality {
	if kind == KindAchievement {
		return PersonalityMotivational
	}
	switch problem {
	case ProblemPlanExpired:
		return PersonalityMotivational
	case ProblemInactive:
		return PersonalityGrandmother
	default:
		return allPersonalities[rng.Intn(len(allPersonalities))]
	}
}

var baseHashtags = []string{"#gym", "#fitness", "#comunidad"}

var problemHashtags = map[ProblemCategory][]string{
	ProblemPlanExpired: {"#renueva", "#vuelve"},
	ProblemInactive:    {"#teextrañamos", "#vuelve"},
	ProblemAbsence:     {"#teesperamos", "#noaflojes"},
}

var achievementHashtags = map[AchievementCategory][]string{
	AchievementConstancy: {"#constancia", "#disciplina"},
	AchievementStreak:    {"#racha", "#imparable"},
	AchievementComeback:  {"#regreso", "#volvio"},
	AchievementNewcomer:  {"#bienvenido", "#nuevaetapa"},
	AchievementMilestone: {"#meta", "#hito"},
}

func hashtagsFor(kind Kind, problem ProblemCategory, achievement AchievementCategory) []string {
	tags := append([]string{}, baseHashtags...)
	if kind == KindProblem {
		return append(tags, problemHashtags[problem]...)
	}
	return append(tags, achievementHashtags[achievement]...)
}

// problemTemplates hold title and body per category and personality.
// {name} and {n} are substituted by the local generator.
type template struct {
	title string
	body  string
}

var problemTemplates = map[ProblemCategory]map[Personality]template{
	ProblemPlanExpired: {
		PersonalityMotivational: {
			title: "¡{name}, tu mejor versión te espera!",
			body:  "{name}, tu plan venció pero tus ganas no. Renovalo hoy y seguí construyendo el hábito que empezaste.",
		},
	},
	ProblemInactive: {
		PersonalityGrandmother: {
			title: "{name}, la casa no es lo mismo sin vos",
			body:  "Hace tiempo que no te vemos por el gimnasio, {name}. Acá siempre hay un lugar (y una buena charla) esperándote.",
		},
	},
	ProblemAbsence: {
		PersonalityMotivational: {
			title: "¡{name}, te extrañamos en el gym!",
			body:  "Ya pasaron {n} días desde tu última visita, {name}. Un entrenamiento hoy vale más que diez planeados.",
		},
		PersonalitySarcastic: {
			title: "{name}, las pesas preguntan por vos",
			body:  "{n} días sin venir, {name}. Las máquinas están empezando a olvidar tu cara. ¿Les refrescamos la memoria?",
		},
		PersonalityGrandmother: {
			title: "{name}, ¿todo bien, tesoro?",
			body:  "Hace {n} días que no pasás por el gimnasio, {name}. Vení aunque sea un ratito, que el cuerpo y el ánimo lo agradecen.",
		},
		PersonalityAnalytical: {
			title: "{name}: {n} días fuera de rutina",
			body:  "Los datos no mienten, {name}: {n} días sin entrenar cortan la curva de progreso. Retomar hoy minimiza la pérdida.",
		},
	},
}

var achievementTemplates = map[AchievementCategory]template{
	AchievementConstancy: {
		title: "¡{name} no falla nunca!",
		body:  "{n} días seguidos entrenando. {name} es la definición de constancia y un ejemplo para toda la comunidad.",
	},
	AchievementStreak: {
		title: "¡{name} está imparable!",
		body:  "{n} visitas esta semana. {name} está en racha y no piensa frenar.",
	},
	AchievementComeback: {
		title: "¡El regreso de {name}!",
		body:  "{name} volvió con todo: {n} entrenamientos este mes y sumando. Así se retoma el ritmo.",
	},
	AchievementNewcomer: {
		title: "¡Bienvenido a la familia, {name}!",
		body:  "{name} llegó hace poco y ya lleva {n} entrenamientos este mes. Gran manera de empezar.",
	},
	AchievementMilestone: {
		title: "¡{name} alcanzó las {n} visitas!",
		body:  "Hoy {name} llegó a {n} entrenamientos en total. Un hito que se construye día a día. ¡Felicitaciones!",
	},
}

// imageStyles describe the cartoon illustration per voice.
var imageStyles = map[Personality]string{
	PersonalityMotivational: "colores vivos, pose triunfante, energía de superación",
	PersonalitySarcastic:    "humor gráfico, expresión pícara, una pesa con cara de aburrida",
	PersonalityGrandmother:  "tonos cálidos, ambiente hogareño, una taza de té junto a las mancuernas",
	PersonalityAnalytical:   "estilo infográfico, gráficos de progreso de fondo, paleta sobria",
}

func imagePrompt(p Personality, kind Kind) string {
	scene := "una persona entrenando en un gimnasio"
	if kind == KindAchievement {
		scene = "una persona celebrando un logro en un gimnasio"
	}
	return fmt.Sprintf("Ilustración estilo caricatura de %s, %s, sin texto dentro de la imagen.", scene, imageStyles[p])
}
