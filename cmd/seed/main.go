package main

import (
	"log"
	"os"

	"academy-chatbot-be/internal/model"
	"academy-chatbot-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding knowledge base...")

	seedTrainings(db)
	seedCourseTexts(db)
	seedFaqs(db)
	seedTrainers(db)
	seedGraduates(db)

	color.Green("✅ Seeding complete")
}

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func seedTrainings(db *gorm.DB) {
	trainings := []model.Training{
		{Id: 1, Title: "Excel ilə Data Analytics", IsActive: true, OrderIndex: 1},
		{Id: 2, Title: "SQL və Data Management", IsActive: true, OrderIndex: 2},
		{Id: 3, Title: "Tableau Business Intelligence", IsActive: true, OrderIndex: 3},
		{Id: 4, Title: "Python Programming", IsActive: true, OrderIndex: 4},
		{Id: 5, Title: "Machine Learning Fundamentals", IsActive: true, OrderIndex: 5},
		{Id: 6, Title: "Power BI", IsActive: true, OrderIndex: 6},
		{Id: 7, Title: "SPSS ilə Statistik Analiz", IsActive: true, OrderIndex: 7},
		{Id: 8, Title: "Deep Learning və AI", IsActive: true, OrderIndex: 8},
		{Id: 9, Title: "R ilə Data Science", IsActive: false, OrderIndex: 9},
		{Id: 10, Title: "PL/SQL Proqramlaşdırma", IsActive: true, OrderIndex: 10},
		{Id: 11, Title: "Data Warehouse Design", IsActive: true, OrderIndex: 11},
		{Id: 12, Title: "NLP və Computer Vision", IsActive: true, OrderIndex: 12},
		{Id: 13, Title: "Django Backend Development", IsActive: true, OrderIndex: 13},
		{Id: 14, Title: "Machine Learning Bootcamp", IsActive: true, OrderIndex: 14},
	}
	for _, t := range trainings {
		if err := db.FirstOrCreate(&model.Training{}, t).Error; err != nil {
			color.Red("Failed to seed training %q: %v", t.Title, err)
		}
	}
	color.Green("  trainings: %d", len(trainings))
}

func seedCourseTexts(db *gorm.DB) {
	texts := []model.CourseText{
		{
			Title:       "Excel ilə Data Analytics",
			Description: "Sıfırdan Excel ilə data analitikası: funksiyalar, pivot cədvəllər, vizuallaşdırma.",
			Information: "Təlim müddəti 2 aydır. Həftədə 2 dəfə, hər dərs 2-3 saat. Praktiki tapşırıqlar və real datasetlər üzərində iş.",
			Price:       intPtr(250),
			ForWho:      "Analitikaya yeni başlayanlar üçün",
			TrainingId:  int64Ptr(1),
		},
		{
			Title:       "Python Programming",
			Description: "Python proqramlaşdırma dilinin əsasları: sintaksis, data strukturları, OOP.",
			Information: "Təlim müddəti 3 aydır. Data Science istiqamətinə keçid üçün baza yaradır.",
			Price:       intPtr(400),
			ForWho:      "Proqramlaşdırmaya yeni başlayanlar üçün",
			TrainingId:  int64Ptr(4),
		},
		{
			Title:       "Machine Learning Fundamentals",
			Description: "Maşın öyrənməsinin əsasları: regressiya, klassifikasiya, klasterləşdirmə.",
			Information: "Təlim müddəti 4 aydır. Python bilikləri tələb olunur. Real layihələr üzərində iş.",
			Price:       intPtr(800),
			ForWho:      "Python bilənlər üçün",
			TrainingId:  int64Ptr(5),
		},
		{
			Title:       "Deep Learning və AI",
			Description: "Neural şəbəkələr, TensorFlow və PyTorch ilə dərin öyrənmə.",
			Information: "Təlim müddəti 4 aydır. Machine Learning bilikləri tələb olunur.",
			Price:       intPtr(1200),
			ForWho:      "Machine Learning bilənlər üçün",
			TrainingId:  int64Ptr(8),
		},
		{
			Title:       "Machine Learning Bootcamp",
			Description: "İntensiv bootcamp: Python, ML və Deep Learning bir proqramda.",
			Information: "Bootcamp müddəti 6 aydır. İş tapana qədər karyera dəstəyi.",
			Price:       intPtr(2000),
			ForWho:      "Karyera dəyişikliyi istəyənlər üçün",
			TrainingId:  int64Ptr(14),
		},
	}
	for _, t := range texts {
		if err := db.Where("title = ?", t.Title).FirstOrCreate(&model.CourseText{}, t).Error; err != nil {
			color.Red("Failed to seed course text %q: %v", t.Title, err)
		}
	}
	color.Green("  course texts: %d", len(texts))
}

func seedFaqs(db *gorm.DB) {
	faqs := []model.Faq{
		{
			Question: "Təlimlər hansı formatda keçirilir?",
			Answer:   "Təlimlər həm online, həm də oflayn formatda keçirilir. Qruplar həftə içi və həftə sonu mövcuddur.",
		},
		{
			Question: "Sertifikat verilirmi?",
			Answer:   "Bəli, hər təlimi uğurla bitirən iştirakçıya beynəlxalq sertifikat verilir.",
		},
		{
			Question: "Ödəniş hissə-hissə mümkündürmü?",
			Answer:   "Bəli, təlim haqqını 2-3 hissəyə bölərək ödəmək mümkündür.",
		},
	}
	for _, f := range faqs {
		if err := db.Where("question = ?", f.Question).FirstOrCreate(&model.Faq{}, f).Error; err != nil {
			color.Red("Failed to seed FAQ %q: %v", f.Question, err)
		}
	}
	color.Green("  faqs: %d", len(faqs))
}

func seedTrainers(db *gorm.DB) {
	trainers := []model.Trainer{
		{Name: "Elvin Məmmədov", Position: "Senior Data Scientist", Location: "Bakı", Bio: "10 illik data science təcrübəsi, ML və Deep Learning təlimçisi."},
		{Name: "Aysel Quliyeva", Position: "BI Engineer", Location: "Bakı", Bio: "Tableau və Power BI üzrə sertifikatlı mütəxəssis."},
	}
	for _, t := range trainers {
		if err := db.Where("name = ?", t.Name).FirstOrCreate(&model.Trainer{}, t).Error; err != nil {
			color.Red("Failed to seed trainer %q: %v", t.Name, err)
		}
	}
	color.Green("  trainers: %d", len(trainers))
}

func seedGraduates(db *gorm.DB) {
	graduates := []model.Graduate{
		{Name: "Nigar Həsənova", WorkPosition: "Data Analyst", WorkLocation: "PASHA Bank"},
		{Name: "Tural Əliyev", WorkPosition: "ML Engineer", WorkLocation: "Azercell"},
		{Name: "Leyla İsmayılova", WorkPosition: "BI Developer", WorkLocation: "Kapital Bank"},
	}
	for _, g := range graduates {
		if err := db.Where("name = ?", g.Name).FirstOrCreate(&model.Graduate{}, g).Error; err != nil {
			color.Red("Failed to seed graduate %q: %v", g.Name, err)
		}
	}
	color.Green("  graduates: %d", len(graduates))
}
