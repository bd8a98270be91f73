package services

import "mesa-game-backend/internal/game"

// CardPersona scripts the contextual chat: each card has a character that
// opens the conversation and closes it after the bounded participant turns.
type CardPersona struct{}

func NewCardPersona() *CardPersona {
	return &CardPersona{}
}

type persona struct {
	name    string
	opening string
	closing string
}

var personas = map[string]persona{
	"El Delulu": {
		name:    "Crush Imaginario",
		opening: "¿Qué teoría delulu tienes sobre nosotros?",
		closing: "Okay eso confirma todas mis teorías 💭 Lo estoy screenshoteando.",
	},
	"El Ghosteador VIP": {
		name:    "Ex Ghosteado",
		opening: "Hace 3 meses que no me contestas... ¿Sigues vivo?",
		closing: "Tres meses de silencio y ESO es lo que respondes 👻 Increíble.",
	},
	"El Storytoxic": {
		name:    "Followers",
		opening: "¡Wow! ¿Dónde estás? ¡Se ve increíble!",
		closing: "Ese caption va directo a las historias destacadas 📸",
	},
	"El Add to Cart": {
		name:    "Amazon",
		opening: "Tu pedido ha sido entregado. ¿Qué compraste a las 3 AM?",
		closing: "Gracias por tu compra. Te recomendamos terapia en tu próximo carrito 🛒",
	},
	"El Situationship": {
		name:    "Situationship",
		opening: "Hey... ¿qué somos? 👉👈",
		closing: "Okay... entonces seguimos sin ser nada. Entendido 🚩",
	},
	"El Soft Launch": {
		name:    "Instagram",
		opening: "¡Nueva publicación! ¿Quién es esa mano misteriosa en tu foto?",
		closing: "Publicado. Los comentarios ya están especulando 📱",
	},
	"El Rizz Master": {
		name:    "Match de Tinder",
		opening: "Hola, acabo de hacer match contigo. Sorpréndeme.",
		closing: "Ngl... eso medio funcionó 💘 Unmatch pospuesto.",
	},
	"El Main Character": {
		name:    "Director de Netflix",
		opening: "Cuéntame sobre tu día como si fuera una serie de Netflix",
		closing: "Corte. Queda renovado para una segunda temporada 🎬",
	},
}

var defaultPersona = persona{
	name:    "El Grupo",
	opening: "Okay, todos están esperando tu respuesta... no la arruines 👀",
	closing: "Eso queda grabado para siempre en el chat del grupo 💀",
}

func personaFor(card game.Card) persona {
	if p, ok := personas[card.Name]; ok {
		return p
	}
	return defaultPersona
}

func (cp *CardPersona) Opening(card game.Card) game.ChatMessage {
	return game.ChatMessage{From: "persona", Text: personaFor(card).opening}
}

func (cp *CardPersona) Closing(card game.Card) game.ChatMessage {
	return game.ChatMessage{From: "persona", Text: personaFor(card).closing}
}

// PersonaName is used by clients to label the chat header.
func (cp *CardPersona) PersonaName(card game.Card) string {
	return personaFor(card).name
}
