package services

import "math/rand"

// Authoritative fallback content. The challenge provider, the analyzer and
// the reward resolver all read from here so the copies cannot drift.

const defaultChallenge = "Confiesa algo vergonzoso que hiciste bajo los efectos del alcohol 🍸 #MomentoViral"

var fallbackChallenges = map[string]string{
	"El Delulu":         "Confiesa tu teoría más delulu que has tenido después de tres shots de tequila 🍹 #DeluluEsMiPersonalidad",
	"El Ghosteador VIP": "Recrea el último mensaje que enviaste a las 3 AM y luego borraste. Bonus si mencionas a Bad Bunny 🐰 #GhosteadorProfesional",
	"El Storytoxic":     "Crea una story fingiendo que estás en Tulum, pero es el Oxxo de tu colonia. Usa la frase 'living my best life' 🌴 #OxxoAesthetic",
	"El Add to Cart":    "Confiesa la compra más random que hiciste ebrio/a en Amazon. Bonus si fue inspirada por TikTok 🛒 #ShoppingTherapy",
	"El Situationship":  "Describe la red flag más grande que ignoraste por estar enamorado/a. Usa la frase 'pero tiene potencial' 🚩 #RedFlagParty",
	"El Soft Launch":    "Crea el caption perfecto para anunciar una relación sin decir que estás en una relación 💫 #SoftLaunchEra",
	"El Rizz Master":    "Comparte tu línea de ligue más cringe que increíblemente funcionó 😎 #UnrealRizz",
	"El Main Character": "Narra tu día como si fueras el protagonista de una serie de Netflix. Bonus si mencionas un soundtrack 🎬 #MainCharacterEnergy",
}

// FallbackChallenge returns the deterministic challenge for a card name.
func FallbackChallenge(cardName string) string {
	if c, ok := fallbackChallenges[cardName]; ok {
		return c
	}
	return defaultChallenge
}

const DefaultRewardCategory = "Humor"

var rewardCategories = []string{
	"Humor", "Creatividad", "Drama", "Confesión", "Viral", "Delulu", "Cringe", "Aesthetic",
}

var genericPlaylists = []string{
	"Canciones para llorar en el Oxxo mientras stalkeas a tu ex",
	"Éxitos para fingir que superaste tu tusa",
	"Lo que escuchas cuando te ghostean por 5ta vez",
	"Soundtrack para tu era villain después de un situationship",
	"Canciones para fingir que estás en Tulum pero estás en tu cuarto",
}

var genericFilters = []string{
	"Golden Hour Falso para tus stories de peda casera",
	"Filtro 'Soy un catch pero estoy traumado/a'",
	"Aesthetic Oxxo: Haz que cualquier tienda parezca Tulum",
	"Filtro 'Me ghostearon pero estoy mejor que nunca'",
	"Preset 'Soft Launch de relación que durará 2 semanas'",
}

var genericDocuments = []string{
	"Cómo fingir viajes en el Oxxo: Guía para millennials quebrados",
	"10 captions para fotos de perfil que gritan 'Soy un catch pero estoy traumado/a'",
	"Guía de Ghosteo Épico: Técnicas avanzadas",
	"Manual del Situationship: Cómo estar en una relación sin compromiso",
	"Diccionario Gen Z: Para que no te digan Cheugy",
}

var fallbackFeedback = []string{
	"¡Eso fue tan delulu que hasta Taylor Swift te daría un like! 💅 Mereces un PDF de 'Cómo fingir viajes en Instagram'.",
	"Ese nivel de drama solo lo veo en mis historias destacadas 📱 Te ganaste la playlist 'Canciones para llorar en el Oxxo'.",
	"Main character energy al 100% 🌟 Esto merece un filtro de 'Golden Hour Falso' para tus próximas stories.",
	"Esa respuesta es más tóxica que mi ex. Necesito ese nivel de caos en mi feed 🔥 Te mereces un curso de 'Red Flags 101'.",
	"Vibes inmaculadas, bestie. Esto es más aesthetic que mis fotos editadas con 27 filtros 💫 Mereces un preset exclusivo.",
}

func randomFeedback() string {
	return fallbackFeedback[rand.Intn(len(fallbackFeedback))]
}
