package store

import (
	"context"
	"fmt"

	"quizarena/internal/models"
)

type seedTheme struct {
	theme     models.Theme
	questions []models.Question
}

var seedThemes = []seedTheme{
	{
		theme: models.Theme{
			Name:        "Histoire",
			Description: "De l'Antiquité à nos jours",
			Icon:        "landmark",
			Color:       "#b45309",
			IsActive:    true,
		},
		questions: []models.Question{
			{
				Text:          "En quelle année a eu lieu la Révolution française ?",
				Options:       []string{"1789", "1792", "1804", "1815"},
				CorrectAnswer: 0,
				Difficulty:    models.DifficultyEasy,
				Explanation:   "La prise de la Bastille, le 14 juillet 1789, marque le début de la Révolution.",
			},
			{
				Text:          "Qui était le premier empereur romain ?",
				Options:       []string{"Jules César", "Auguste", "Néron", "Trajan"},
				CorrectAnswer: 1,
				Difficulty:    models.DifficultyMedium,
				Explanation:   "Auguste devient le premier empereur en 27 av. J.-C.",
			},
			{
				Text:          "Quel traité met fin à la Première Guerre mondiale ?",
				Options:       []string{"Traité de Vienne", "Traité de Versailles", "Traité de Rome", "Traité de Tordesillas"},
				CorrectAnswer: 1,
				Difficulty:    models.DifficultyEasy,
				Explanation:   "Le traité de Versailles est signé le 28 juin 1919.",
			},
			{
				Text:          "Quelle dynastie régnait en France avant les Bourbons ?",
				Options:       []string{"Les Capétiens", "Les Mérovingiens", "Les Valois", "Les Carolingiens"},
				CorrectAnswer: 2,
				Difficulty:    models.DifficultyHard,
				Explanation:   "Les Valois règnent de 1328 à 1589, avant l'avènement d'Henri IV.",
			},
		},
	},
	{
		theme: models.Theme{
			Name:        "Géographie",
			Description: "Pays, capitales et reliefs du monde",
			Icon:        "globe",
			Color:       "#047857",
			IsActive:    true,
		},
		questions: []models.Question{
			{
				Text:          "Quelle est la capitale de l'Australie ?",
				Options:       []string{"Sydney", "Melbourne", "Canberra", "Perth"},
				CorrectAnswer: 2,
				Difficulty:    models.DifficultyMedium,
				Explanation:   "Canberra a été choisie en 1908 comme compromis entre Sydney et Melbourne.",
			},
			{
				Text:          "Quel est le plus long fleuve du monde ?",
				Options:       []string{"L'Amazone", "Le Nil", "Le Yangzi Jiang", "Le Mississippi"},
				CorrectAnswer: 1,
				Difficulty:    models.DifficultyEasy,
				Explanation:   "Le Nil s'étend sur environ 6 650 km.",
			},
			{
				Text:          "Dans quel pays se trouve le K2 ?",
				Options:       []string{"Népal", "Inde", "Chine", "Pakistan"},
				CorrectAnswer: 3,
				Difficulty:    models.DifficultyHard,
				Explanation:   "Le K2 culmine à 8 611 m dans le Karakoram pakistanais.",
			},
			{
				Text:          "Combien de pays compte l'Union européenne en 2024 ?",
				Options:       []string{"25", "27", "28", "30"},
				CorrectAnswer: 1,
				Difficulty:    models.DifficultyMedium,
			},
		},
	},
	{
		theme: models.Theme{
			Name:        "Sciences",
			Description: "Physique, chimie et sciences de la vie",
			Icon:        "flask",
			Color:       "#1d4ed8",
			IsActive:    true,
		},
		questions: []models.Question{
			{
				Text:          "Quel est le symbole chimique de l'or ?",
				Options:       []string{"Or", "Au", "Ag", "Go"},
				CorrectAnswer: 1,
				Difficulty:    models.DifficultyEasy,
				Explanation:   "Au vient du latin aurum.",
			},
			{
				Text:          "Quelle planète est la plus proche du Soleil ?",
				Options:       []string{"Vénus", "Mars", "Mercure", "La Terre"},
				CorrectAnswer: 2,
				Difficulty:    models.DifficultyEasy,
			},
			{
				Text:          "Quelle est l'unité de la résistance électrique ?",
				Options:       []string{"Le volt", "L'ampère", "Le watt", "L'ohm"},
				CorrectAnswer: 3,
				Difficulty:    models.DifficultyMedium,
			},
			{
				Text:          "Combien de paires de chromosomes possède l'être humain ?",
				Options:       []string{"21", "22", "23", "24"},
				CorrectAnswer: 2,
				Difficulty:    models.DifficultyMedium,
				Explanation:   "46 chromosomes répartis en 23 paires.",
			},
		},
	},
	{
		theme: models.Theme{
			Name:        "Cinéma",
			Description: "Films, réalisateurs et répliques cultes",
			Icon:        "clapperboard",
			Color:       "#7c3aed",
			IsActive:    true,
		},
		questions: []models.Question{
			{
				Text:          "Qui a réalisé le film « Le Fabuleux Destin d'Amélie Poulain » ?",
				Options:       []string{"Luc Besson", "Jean-Pierre Jeunet", "Michel Gondry", "François Truffaut"},
				CorrectAnswer: 1,
				Difficulty:    models.DifficultyEasy,
			},
			{
				Text:          "Quel film a remporté la Palme d'or en 2019 ?",
				Options:       []string{"Parasite", "Joker", "Roma", "Portrait de la jeune fille en feu"},
				CorrectAnswer: 0,
				Difficulty:    models.DifficultyMedium,
				Explanation:   "Parasite de Bong Joon-ho, avant ses quatre Oscars en 2020.",
			},
			{
				Text:          "Dans quelle saga trouve-t-on le personnage de Dark Vador ?",
				Options:       []string{"Star Trek", "Dune", "Star Wars", "Stargate"},
				CorrectAnswer: 2,
				Difficulty:    models.DifficultyEasy,
			},
			{
				Text:          "Quel réalisateur a tourné « Les 400 Coups » ?",
				Options:       []string{"Jean-Luc Godard", "Claude Chabrol", "Éric Rohmer", "François Truffaut"},
				CorrectAnswer: 3,
				Difficulty:    models.DifficultyHard,
				Explanation:   "Premier long métrage de Truffaut, pilier de la Nouvelle Vague (1959).",
			},
		},
	},
}

// Seed loads the built-in French themes and questions. Called once at
// startup on an empty store.
func (s *Store) Seed(ctx context.Context) error {
	for _, entry := range seedThemes {
		theme, err := s.Themes.Create(ctx, entry.theme)
		if err != nil {
			return fmt.Errorf("seed theme %q: %w", entry.theme.Name, err)
		}
		for _, question := range entry.questions {
			question.ThemeID = theme.ID
			if _, err := s.Questions.Create(ctx, question); err != nil {
				return fmt.Errorf("seed question %q: %w", question.Text, err)
			}
		}
	}
	return nil
}
