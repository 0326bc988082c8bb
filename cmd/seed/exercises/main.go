package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/flowfit/flowfit/internal/config"
	"github.com/flowfit/flowfit/internal/domain"
	"github.com/flowfit/flowfit/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoDB.URI))
	if err != nil {
		log.Fatalf("Failed to connect to Mongo: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDB.Database)
	repo := repository.NewMongoExerciseRepository(db)

	exercises := []domain.Exercise{
		// Musculation
		{Name: "Pompes", Description: "Pompes classiques, corps gainé du début à la fin", Category: domain.CategoryMusculation, Subcategory: "Pectoraux"},
		{Name: "Squats", Description: "Flexions de jambes au poids du corps", Category: domain.CategoryMusculation, Subcategory: "Jambes"},
		{Name: "Fentes avant", Description: "Fentes alternées, genou arrière proche du sol", Category: domain.CategoryMusculation, Subcategory: "Jambes"},
		{Name: "Gainage planche", Description: "Maintien en planche sur les avant-bras", Category: domain.CategoryMusculation, Subcategory: "Abdominaux"},
		{Name: "Burpees", Description: "Enchaînement pompe, saut groupé, extension", Category: domain.CategoryMusculation, Subcategory: "Cardio"},
		{Name: "Dips sur chaise", Description: "Extensions de triceps entre deux appuis", Category: domain.CategoryMusculation, Subcategory: "Triceps"},
		{Name: "Mountain climbers", Description: "Montées de genoux rapides en position de planche", Category: domain.CategoryMusculation, Subcategory: "Cardio"},
		{Name: "Crunchs", Description: "Relevés de buste courts, lombaires au sol", Category: domain.CategoryMusculation, Subcategory: "Abdominaux"},
		{Name: "Superman", Description: "Extensions lombaires allongé sur le ventre", Category: domain.CategoryMusculation, Subcategory: "Dos"},
		{Name: "Squats sautés", Description: "Squats avec extension explosive", Category: domain.CategoryMusculation, Subcategory: "Jambes"},

		// Yoga
		{Name: "Chien tête en bas", Description: "Posture en V inversé, talons vers le sol", Category: domain.CategoryYoga, Subcategory: "Postures debout"},
		{Name: "Posture du guerrier", Description: "Fente profonde, bras tendus au-dessus de la tête", Category: domain.CategoryYoga, Subcategory: "Postures debout"},
		{Name: "Posture de l'enfant", Description: "Posture de repos, front au sol", Category: domain.CategoryYoga, Subcategory: "Postures au sol"},
		{Name: "Posture du cobra", Description: "Extension du dos, bassin au sol", Category: domain.CategoryYoga, Subcategory: "Postures au sol"},
		{Name: "Posture de l'arbre", Description: "Équilibre sur une jambe, pied contre la cuisse", Category: domain.CategoryYoga, Subcategory: "Équilibres"},
		{Name: "Salutation au soleil", Description: "Enchaînement fluide de postures", Category: domain.CategoryYoga, Subcategory: "Enchaînements"},
		{Name: "Posture du pigeon", Description: "Ouverture de hanche au sol", Category: domain.CategoryYoga, Subcategory: "Postures au sol"},

		// Mobilité
		{Name: "Rotations d'épaules", Description: "Cercles amples des épaules, bras relâchés", Category: domain.CategoryMobilite, Subcategory: "Haut du corps"},
		{Name: "Cercles de hanches", Description: "Rotations du bassin debout", Category: domain.CategoryMobilite, Subcategory: "Hanches"},
		{Name: "Étirement des ischio-jambiers", Description: "Flexion avant jambes tendues", Category: domain.CategoryMobilite, Subcategory: "Jambes"},
		{Name: "Chat-vache", Description: "Alternance dos rond dos creux à quatre pattes", Category: domain.CategoryMobilite, Subcategory: "Colonne"},
		{Name: "Rotations de chevilles", Description: "Cercles lents de chaque cheville", Category: domain.CategoryMobilite, Subcategory: "Chevilles"},
		{Name: "Ouverture de hanches 90/90", Description: "Transitions assises jambes à 90 degrés", Category: domain.CategoryMobilite, Subcategory: "Hanches"},
	}

	for _, ex := range exercises {
		if err := repo.Create(context.Background(), &ex); err != nil {
			if errors.Is(err, domain.ErrDuplicateExerciseName) {
				fmt.Printf("Skipping duplicate: %s\n", ex.Name)
			} else {
				log.Printf("Error creating %s: %v\n", ex.Name, err)
			}
		} else {
			fmt.Printf("Created: %s\n", ex.Name)
		}
	}
	fmt.Println("Seeding Exercises Complete.")
}
