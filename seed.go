package main

import (
	"log"
	"time"

	"parrotshop/internal/models"
	"parrotshop/internal/repositories"
	"parrotshop/internal/services"
)

// seedDatabase fills an empty store with the initial catalog and
// testimonials so a fresh deployment has something to sell.
func seedDatabase(catalog *services.CatalogService, reviews *services.ReviewService) {
	existing, err := catalog.ListProducts(repositories.ProductListParams{})
	if err != nil {
		log.Printf("Seed check failed: %v", err)
		return
	}
	if len(existing) == 0 {
		log.Println("Seeding database with initial products...")
		for i := range seedProducts {
			if err := catalog.CreateProduct(&seedProducts[i]); err != nil {
				log.Printf("Error seeding product %s: %v", seedProducts[i].Name, err)
			}
		}
		log.Printf("Seeded %d products", len(seedProducts))
	}

	existingReviews, err := reviews.ListReviews()
	if err != nil {
		log.Printf("Review seed check failed: %v", err)
		return
	}
	if len(existingReviews) == 0 {
		for i := range seedReviews {
			seedReviews[i].CreatedAt = time.Now().AddDate(0, 0, -3*(len(seedReviews)-i))
			if err := reviews.CreateReview(&seedReviews[i]); err != nil {
				log.Printf("Error seeding review from %s: %v", seedReviews[i].CustomerName, err)
			}
		}
		log.Printf("Seeded %d reviews", len(seedReviews))
	}
}

var seedProducts = []models.Product{
	{
		Name:        "Padovan GrandMix для попугаев",
		Category:    models.CategoryFeed,
		Price:       850,
		InStock:     true,
		Image:       "https://images.unsplash.com/photo-1620698116935-4333678385da?w=500&q=80",
		Images:      models.StringList{"https://images.unsplash.com/photo-1620698116935-4333678385da?w=500&q=80"},
		Description: "Комплексный корм для средних попугаев (неразлучников, корелл). Содержит витамины и злаки.",
		Specs:       models.SpecList{{Key: "Вес", Value: "400г"}, {Key: "Бренд", Value: "Padovan"}},
		Popular:     true,
	},
	{
		Name:        "Versele-Laga Prestige Premium",
		Category:    models.CategoryFeed,
		Price:       1200,
		InStock:     true,
		Image:       "https://images.unsplash.com/photo-1615822461937-299f06e00cb1?w=500&q=80",
		Images:      models.StringList{"https://images.unsplash.com/photo-1615822461937-299f06e00cb1?w=500&q=80"},
		Description: "Премиальная смесь для всех видов попугаев. Обогащена VAM-гранулами.",
		Specs:       models.SpecList{{Key: "Вес", Value: "1кг"}, {Key: "Бренд", Value: "Versele-Laga"}},
		Popular:     true,
	},
	{
		Name:        "RIO для средних попугаев",
		Category:    models.CategoryFeed,
		Price:       450,
		InStock:     true,
		Image:       "https://images.unsplash.com/photo-1549488344-c7052fb50142?w=500&q=80",
		Images:      models.StringList{"https://images.unsplash.com/photo-1549488344-c7052fb50142?w=500&q=80"},
		Description: "Рацион для ежедневного кормления. Содержит нут, сафлор и рябину.",
		Specs:       models.SpecList{{Key: "Вес", Value: "500г"}, {Key: "Бренд", Value: "RIO"}},
		Popular:     true,
	},
	{
		Name:        "Fiory African для Жако",
		Category:    models.CategoryFeed,
		Price:       2100,
		InStock:     true,
		Image:       "https://images.unsplash.com/photo-1589304677732-c7a40b0373df?w=500&q=80",
		Images:      models.StringList{"https://images.unsplash.com/photo-1589304677732-c7a40b0373df?w=500&q=80"},
		Description: "Специальная смесь для африканских попугаев.",
		Specs:       models.SpecList{{Key: "Вес", Value: "800г"}, {Key: "Бренд", Value: "Fiory"}},
	},
	{
		Name:        "Клетка Triol BC14W для средних птиц",
		Category:    models.CategoryCages,
		Price:       8500,
		InStock:     true,
		Image:       "https://images.unsplash.com/photo-1552053831-71594a27632d?w=500&q=80",
		Images:      models.StringList{"https://images.unsplash.com/photo-1552053831-71594a27632d?w=500&q=80"},
		Description: "Просторная клетка с открывающимся верхом. Подходит для корелл.",
		Specs:       models.SpecList{{Key: "Размер", Value: "82x77x156 см"}, {Key: "Цвет", Value: "Белый"}},
		Popular:     true,
	},
	{
		Name:        "Imac Elisa для маленьких попугаев",
		Category:    models.CategoryCages,
		Price:       6500,
		InStock:     true,
		Image:       "https://images.unsplash.com/photo-1452570053594-1b985d6ea890?w=500&q=80",
		Images:      models.StringList{"https://images.unsplash.com/photo-1452570053594-1b985d6ea890?w=500&q=80"},
		Description: "Уютная клетка для волнистых попугаев.",
		Specs:       models.SpecList{{Key: "Бренд", Value: "Imac"}, {Key: "Форма", Value: "Прямоугольная"}},
		Popular:     true,
	},
	{
		Name:        "Канат хлопковый с узлами",
		Category:    models.CategoryToys,
		Price:       450,
		InStock:     true,
		Image:       "https://images.unsplash.com/photo-1551846017-d5d59f77f98d?w=500&q=80",
		Images:      models.StringList{"https://images.unsplash.com/photo-1551846017-d5d59f77f98d?w=500&q=80"},
		Description: "Гибкий канат для лазания.",
		Specs:       models.SpecList{{Key: "Материал", Value: "Хлопок"}, {Key: "Длина", Value: "50 см"}},
		Popular:     true,
	},
	{
		Name:        "Лесенка из натурального дерева",
		Category:    models.CategoryToys,
		Price:       280,
		InStock:     true,
		Image:       "https://images.unsplash.com/photo-1627483297886-ca08197c36a8?w=500&q=80",
		Images:      models.StringList{"https://images.unsplash.com/photo-1627483297886-ca08197c36a8?w=500&q=80"},
		Description: "5 ступенек, крепление крючками.",
		Specs:       models.SpecList{{Key: "Размер", Value: "25 см"}},
		Popular:     true,
	},
	{
		Name:        "Кормушка-головоломка",
		Category:    models.CategoryToys,
		Price:       890,
		InStock:     true,
		Image:       "https://images.unsplash.com/photo-1618609571871-247514a681c2?w=500&q=80",
		Images:      models.StringList{"https://images.unsplash.com/photo-1618609571871-247514a681c2?w=500&q=80"},
		Description: "Развивает интеллект птицы, заставляет добывать еду.",
		Specs:       models.SpecList{{Key: "Материал", Value: "Акрил"}},
		Popular:     true,
	},
	{
		Name:        "Витамины Beaphar Vinka",
		Category:    models.CategoryVet,
		Price:       650,
		InStock:     true,
		Image:       "https://images.unsplash.com/photo-1471193945509-9adadd0974ce?w=500&q=80",
		Images:      models.StringList{"https://images.unsplash.com/photo-1471193945509-9adadd0974ce?w=500&q=80"},
		Description: "Мультивитаминный комплекс для иммунитета.",
		Specs:       models.SpecList{{Key: "Объем", Value: "50 мл"}, {Key: "Бренд", Value: "Beaphar"}},
		Popular:     true,
	},
	{
		Name:        "Минеральный камень с йодом",
		Category:    models.CategoryVet,
		Price:       120,
		InStock:     true,
		Image:       "https://images.unsplash.com/photo-1628148855675-9e6610058e5f?w=500&q=80",
		Images:      models.StringList{"https://images.unsplash.com/photo-1628148855675-9e6610058e5f?w=500&q=80"},
		Description: "Источник кальция и йода.",
		Specs:       models.SpecList{{Key: "Вес", Value: "20г"}},
	},
	{
		Name:        "Пробиотик для птиц Ветом",
		Category:    models.CategoryVet,
		Price:       520,
		InStock:     true,
		Image:       "https://images.unsplash.com/photo-1579684385127-1ef15d508118?w=500&q=80",
		Images:      models.StringList{"https://images.unsplash.com/photo-1579684385127-1ef15d508118?w=500&q=80"},
		Description: "Для нормализации пищеварения.",
		Specs:       models.SpecList{{Key: "Вес", Value: "50г"}},
		Popular:     true,
	},
}

var seedReviews = []models.Review{
	{
		CustomerName:   "Мария Петрова",
		City:           "Москва",
		Rating:         5,
		Text:           "Отличный магазин! Доставка была быстрой, всё прибыло в отличном состоянии. Рекомендую!",
		Image:          "https://images.unsplash.com/photo-1552053831-71594a27632d?w=500&q=80",
		DeliveryMethod: "Доставка по России",
	},
	{
		CustomerName:   "Иван Сидоров",
		City:           "Санкт-Петербург",
		Rating:         5,
		Text:           "Профессиональный подход! Консультировали по уходу, дали все необходимые рекомендации. Спасибо!",
		Image:          "https://images.unsplash.com/photo-1444464666175-1642a9f33e12?w=500&q=80",
		DeliveryMethod: "Курьер",
	},
	{
		CustomerName:   "Елена Козлова",
		City:           "Екатеринбург",
		Rating:         5,
		Text:           "Красивая клетка, все необходимое для содержания. Попугай быстро привык к новому дому.",
		Image:          "https://images.unsplash.com/photo-1535241749838-299277b6305f?w=500&q=80",
		DeliveryMethod: "CDEK",
	},
	{
		CustomerName:   "Алексей Новиков",
		City:           "Казань",
		Rating:         4,
		Text:           "Хороший выбор товаров. Немного дороговато, но качество стоит того.",
		Image:          "https://images.unsplash.com/photo-1444464666175-1642a9f33e12?w=500&q=80",
		DeliveryMethod: "Доставка по России",
	},
	{
		CustomerName:   "Ольга Смирнова",
		City:           "Новосибирск",
		Rating:         5,
		Text:           "Спасибо за помощь в выборе! Очень рекомендую этот магазин!",
		Image:          "https://images.unsplash.com/photo-1552053831-71594a27632d?w=500&q=80",
		DeliveryMethod: "Курьер",
	},
	{
		CustomerName:   "Дмитрий Волков",
		City:           "Воронеж",
		Rating:         5,
		Text:           "Отличное качество! Упаковка была очень аккуратной. Спасибо за внимание к деталям!",
		Image:          "https://images.unsplash.com/photo-1535241749838-299277b6305f?w=500&q=80",
		DeliveryMethod: "CDEK",
	},
}
