package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/luisgarciam27/demo-churre/entity"
	"github.com/luisgarciam27/demo-churre/repository"
	"github.com/tmc/langchaingo/llms"
)

// Respuesta del "Churre IA": texto corto + ids de platos a resaltar en la carta
type Recommendation struct {
	RecommendationText string `json:"recommendationText"`
	SuggestedItemIds   []uint `json:"suggestedItemIds"`
}

const apologyText = "¡Habla causa! No te entendí bien, pero checa estos que están buenazos."

// Diccionario de respuestas predeterminadas: intenciones comunes se resuelven
// local (cero costo, cero latencia) filtrando la carta por tag; el modelo solo
// entra cuando nada matchea. El orden importa: si el texto menciona varias
// palabras clave gana la primera de la lista.
type quickResponse struct {
	keyword string
	text    string
	tag     string
}

var quickResponses = []quickResponse{
	{
		keyword: "piura",
		text:    "¡Habla, churre! ¡Qué elegancia la de Francia! Como buen paisano, lánzate de frente por un Frito o un Pan con Chicharrón bien malcriado. ¡Aquí te sientes como en Piura!",
		tag:     "norteño",
	},
	{
		keyword: "desayuno",
		text:    "¡Habla sobrino! Para empezar el día con fuerza, te recomiendo estos platos que son ley en todo desayuno piurano.",
		tag:     "desayuno",
	},
	{
		keyword: "bajada",
		text:    "¡Habla causa! ¿Buscando la bajada? Estos sánguches son los salvadores oficiales de la madrugada. ¡Bien malcriados!",
		tag:     "bajada",
	},
	{
		keyword: "almuerzo",
		text:    "¡Habla malcriado! Si buscas algo contundente para el almuerzo, estos platos te van a dejar bien servido.",
		tag:     "almuerzo",
	},
}

type RecommendService struct {
	MenuRepo *repository.MenuRepository
	Model    llms.Model // nil = sin API key, solo diccionario + disculpa
}

func NewRecommendService(menuRepo *repository.MenuRepository, model llms.Model) *RecommendService {
	return &RecommendService{MenuRepo: menuRepo, Model: model}
}

// Recommend es request/response sin estado: nada de reintentos ni streaming.
// Cualquier falla (red, cuota, JSON roto) degrada a la disculpa fija con lista
// vacía; el comensal nunca ve un error.
func (s *RecommendService) Recommend(ctx context.Context, userInput string) Recommendation {
	menu, err := s.MenuRepo.List()
	if err != nil {
		log.Printf("recommend: menu load failed: %v", err)
		return Recommendation{RecommendationText: apologyText, SuggestedItemIds: []uint{}}
	}

	lower := strings.ToLower(strings.TrimSpace(userInput))

	// 1) intento local
	for _, qr := range quickResponses {
		if strings.Contains(lower, qr.keyword) {
			return Recommendation{
				RecommendationText: qr.text,
				SuggestedItemIds:   idsByTag(menu, qr.tag),
			}
		}
	}

	// 2) fallback al modelo
	if s.Model == nil {
		return Recommendation{RecommendationText: apologyText, SuggestedItemIds: []uint{}}
	}

	prompt := buildPrompt(userInput, menu)
	raw, err := llms.GenerateFromSinglePrompt(ctx, s.Model, prompt,
		llms.WithTemperature(0.7),
		llms.WithJSONMode(),
	)
	if err != nil {
		log.Printf("recommend: model call failed: %v", err)
		return Recommendation{RecommendationText: apologyText, SuggestedItemIds: []uint{}}
	}

	var parsed Recommendation
	if err := json.Unmarshal([]byte(stripFences(raw)), &parsed); err != nil {
		log.Printf("recommend: bad model output: %v", err)
		return Recommendation{RecommendationText: apologyText, SuggestedItemIds: []uint{}}
	}
	if parsed.RecommendationText == "" {
		parsed.RecommendationText = "¡Habla sobrino! Mira lo que tengo para ti."
	}
	if parsed.SuggestedItemIds == nil {
		parsed.SuggestedItemIds = []uint{}
	}
	return parsed
}

func idsByTag(menu []entity.MenuItem, tag string) []uint {
	ids := make([]uint, 0)
	for _, m := range menu {
		if m.HasTag(tag) {
			ids = append(ids, m.ID)
		}
	}
	return ids
}

func buildPrompt(userInput string, menu []entity.MenuItem) string {
	var b strings.Builder
	for _, m := range menu {
		fmt.Fprintf(&b, "ID: %d - %s: %s (Tags: %s)\n", m.ID, m.Name, m.Description, strings.Join(m.Tags, ", "))
	}
	return fmt.Sprintf(`Eres el "Churre IA", experto de la Sanguchería Piurana "Churre Malcriado".
Basado en el menú:
%s
Instrucciones:
1. Responde MUY CORTO (máximo 2 líneas), alegre y con jerga piurana (sobrino, churre, malcriado).
2. Identifica los IDs de los productos que encajen con: "%s"
3. Devuelve SOLO un JSON: {"recommendationText": string, "suggestedItemIds": [números]}`, b.String(), userInput)
}

// algunos modelos envuelven el JSON en fences aunque pidas modo JSON
func stripFences(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	return strings.TrimSpace(raw)
}
