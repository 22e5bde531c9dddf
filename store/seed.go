package store

// DefaultHomeContent is the homepage copy a fresh state starts with.
func DefaultHomeContent() HomeContent {
	return HomeContent{
		Title:       "Русские Пекари",
		Subtitle:    "Традиционная выпечка с душой",
		Description: "Мы печем самый вкусный хлеб в Иваново с 1995 года. Используем только натуральные ингредиенты и проверенные временем рецепты.",
	}
}

// SeedCatalog loads the starter bakery assortment into the catalog so the
// demo is usable immediately.
func SeedCatalog(c *Catalog) {
	drafts := []ProductDraft{
		{Name: "Бородинский хлеб", Description: "Классический темный хлеб с кориандром", Price: 85, Category: "Хлеб", Image: "https://images.unsplash.com/photo-1509440159596-0249088772ff?w=400"},
		{Name: "Белый батон", Description: "Мягкий пшеничный батон", Price: 45, Category: "Хлеб", Image: "https://images.unsplash.com/photo-1586444248902-2f64eddc13df?w=400"},
		{Name: "Круассан", Description: "Свежий французский круассан", Price: 65, Category: "Выпечка", Image: "https://images.unsplash.com/photo-1555507036-ab1f4038808a?w=400"},
		{Name: "Пирожок с капустой", Description: "Домашний пирожок с капустой", Price: 55, Category: "Пироги", Image: "https://images.unsplash.com/photo-1612198188060-c7c2a3b66eae?w=400"},
		{Name: "Эклер", Description: "Заварное пирожное с кремом", Price: 75, Category: "Десерты", Image: "https://images.unsplash.com/photo-1612201142855-0c8e6e30a1e4?w=400"},
		{Name: "Ржаной хлеб", Description: "Полезный хлеб из цельнозерновой муки", Price: 90, Category: "Хлеб", Image: "https://images.unsplash.com/photo-1549931319-a545dcf3bc04?w=400"},
	}
	for _, d := range drafts {
		// Seed drafts are complete, Add cannot fail on them.
		_, _ = c.Add(d)
	}
}
