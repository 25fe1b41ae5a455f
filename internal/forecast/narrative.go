package forecast

import (
	"fmt"

	"github.com/ngmaloney/sailing-score/internal/models"
)

// narratives[band][tier] holds the detail-view templates. The first %s is the
// boat name; beginner templates take the skill name as a second %s.
var narratives = map[Band][3]string{
	BandExcellent: {
		"Condiciones excelentes para tu %s. Como navegante %s, encontrarás condiciones muy favorables y seguras para disfrutar de una jornada en el agua.",
		"Condiciones ideales para tu %s. Perfecto para aprovechar al máximo la navegación con tu nivel de experiencia.",
		"Excelente ventana para tu %s. Condiciones óptimas que te permitirán sacar el máximo rendimiento.",
	},
	BandGood: {
		"Buenas condiciones para tu %s. Como navegante %s, deberías sentirte cómodo navegando, aunque conviene estar atento a los cambios.",
		"Condiciones apropiadas para tu %s. Tu experiencia te permitirá gestionar bien estas condiciones.",
		"Buenas condiciones para tu %s. Sin complicaciones significativas para tu nivel de experiencia.",
	},
	BandMarginal: {
		"Condiciones límite para tu %s. Como navegante %s, considera posponer la salida o navegar cerca de puerto con compañía experimentada.",
		"Condiciones exigentes para tu %s. Requieren atención y estar preparado para gestionar situaciones complejas.",
		"Condiciones desafiantes para tu %s. Tu experiencia será clave para evaluar si procede la salida.",
	},
	BandPoor: {
		"Condiciones no recomendables para tu %s. Como navegante %s, es muy aconsejable posponer la salida.",
		"Condiciones adversas para tu %s. Se recomienda no navegar excepto en caso de necesidad.",
		"Condiciones muy adversas para tu %s. Navegación no recomendable.",
	},
}

const (
	tierBeginner = iota
	tierIntermediate
	tierNeutral
)

// Describe returns the narrative for a window of the given band, worded for
// the sailor's skill and boat. Unknown skills get the neutral wording.
func Describe(band Band, skill models.SkillLevel, boat models.BoatType) string {
	templates, ok := narratives[band]
	if !ok {
		templates = narratives[BandPoor]
	}

	boatName := boat.DisplayName()
	switch skill {
	case models.SkillBeginner:
		return fmt.Sprintf(templates[tierBeginner], boatName, skill.DisplayName())
	case models.SkillIntermediate:
		return fmt.Sprintf(templates[tierIntermediate], boatName)
	default:
		return fmt.Sprintf(templates[tierNeutral], boatName)
	}
}
