package constant

// Canned chatbot replies. All user-facing copy is Azerbaijani; the academy
// phone and email are embedded literally, change them here when they change.
const (
	ReplyEmptyMessage = "Zəhmət olmasa məqsədinizi daha aydın yazın"

	ReplyGreeting = "Salam! Data Science Academy-ə xoş gəlmisiniz! " +
		"Sizə necə kömək edə bilərəm?\n\n" +
		"• Təlimlərimiz haqqında məlumat\n" +
		"• Qeydiyyat və konsultasiya\n" +
		"• Əlaqə"

	ReplyAmbiguousMenu = "Hansı sahədə sizə kömək edə bilərəm?\n\n" +
		"• Data Analytics təlimləri\n" +
		"• Machine Learning təlimləri\n" +
		"• AI və Deep Learning\n" +
		"• Qeydiyyat və əlaqə"

	ReplyUnclear = "Üzr istəyirik, məqsədinizi tam başa düşə bilmədim. " +
		"Zəhmət olmasa daha konkret sual verin.\n\n" +
		"Məsələn:\n" +
		"• Python təlimi haqqında məlumat\n" +
		"• Qeydiyyat üçün əlaqə\n" +
		"• Təlim qiymətləri"

	ReplyRateLimited = "⚠️ Çox sayda mesaj göndərdiniz. " +
		"Zəhmət olmasa bir az sonra yenidən cəhd edin.\n\n" +
		"Təcili suallar üçün: 051 341 43 40"

	ReplyFlowBroken = "Üzr istəyirik, texniki problem yarandı. Yenidən başlayın."

	ReplyNothingFound = "Bu məlumatı əməkdaşlarımızdan öyrənə bilərik.\n\n" +
		"📞 Əlaqə: 051 341 43 40\n" +
		"📧 Email: info@dsa.az\n\n" +
		"Başqa sualınız varmı?"
)

// Contact flow prompts.
const (
	ReplyContactAskName = "Əlaqə üçün zəhmət olmasa ad və soyadınızı yazın"

	ReplyContactNameTooShort = "Zəhmət olmasa düzgün ad və soyad daxil edin (minimum 3 simvol)"

	ReplyContactAskPhone = "Təşəkkürlər! İndi telefon nömrənizi yazın.\n" +
		"Format: +994XXXXXXXXX"

	ReplyContactBadPhone = "❌ Telefon düzgün formatda deyil.\n" +
		"Düzgün format: +994XXXXXXXXX\n" +
		"Məsələn: +994501234567"

	ReplyContactDuplicatePhone = "⚠️ Bu telefon nömrəsi artıq qeydiyyatdan keçib.\n" +
		"Əməkdaşlarımız sizinlə əlaqə saxlayacaq.\n\n" +
		"Başqa sualınız varmı?"

	ReplyContactAskEmail = "Email ünvanınızı yazın\n" +
		"(və ya keçmək üçün 'yox' yazın)"

	ReplyContactBadEmail = "❌ Email formatı düzgün deyil.\n" +
		"Məsələn: example@gmail.com\n\n" +
		"Və ya keçmək üçün 'yox' yazın"

	ReplyContactAskMessage = "Son addım! Qısa mesajınızı yazın:\n" +
		"(Hansı təlim barədə məlumat almaq istəyirsiniz?)"

	ReplyContactSaved = "✅ Təşəkkürlər! Məlumatlarınız uğurla qeyd edildi.\n\n" +
		"📞 Əməkdaşlarımız tezliklə sizinlə əlaqə saxlayacaq.\n" +
		"📧 Email: info@dsa.az\n" +
		"☎️ Tel: 051 341 43 40\n\n" +
		"Başqa sualınız varmı?"

	ReplyContactSaveFailed = "⚠️ Texniki problem yarandı. Zəhmət olmasa bir daha cəhd edin " +
		"və ya birbaşa əlaqə saxlayın: 051 341 43 40"
)

// Consult flow prompts.
const (
	ReplyConsultAskExperience = "Sizə uyğun təlimi seçməyə kömək edim.\n" +
		"Hansı sahədə təcrübəniz var? " +
		"(Məsələn: proqramlaşdırma, analitika, və ya yoxdur)"

	ReplyConsultAskInterest = "Hansı sahəyə marağınız var?\n\n" +
		"Məsələn:\n" +
		"• Data Analytics (Excel, Tableau, Power BI)\n" +
		"• Machine Learning\n" +
		"• AI və Deep Learning\n" +
		"• SQL və Data Engineering"

	ReplyConsultAskGoal = "Məqsədiniz nədir?\n\n" +
		"Məsələn:\n" +
		"• Karyera dəyişikliyi\n" +
		"• Mövcud bilikləri inkişaf etdirmək\n" +
		"• Sertifikat əldə etmək\n" +
		"• İş tapmaq"

	ReplyConsultAskTime = "Təlimə nə qədər vaxt ayıra bilərsiniz?\n\n" +
		"Məsələn: 2 ay, 3 ay, 6 ay"

	ReplyConsultAskBudget = "Büdcəniz nə qədərdir? (AZN)\n\n" +
		"Qiymət aralığımız: 250 AZN - 2000 AZN\n" +
		"Məsələn: 500, 1000, 1500"

	ReplyConsultFailed = "⚠️ Tövsiyələri hazırlayarkən texniki problem yarandı.\n" +
		"Zəhmət olmasa bir daha cəhd edin və ya birbaşa əlaqə saxlayın:\n\n" +
		"📞 051 341 43 40\n" +
		"📧 info@dsa.az"

	ReplyNoRecommendations = "Təəssüf ki, tələblərinizə tam uyğun təlim tapılmadı.\n\n" +
		"📞 Ətraflı məsləhət üçün: 051 341 43 40\n" +
		"📧 Email: info@dsa.az"
)

// Query handler fallbacks.
const (
	ReplyNoActiveTrainings = "Hal-hazırda aktiv təlim yoxdur. " +
		"Ətraflı məlumat üçün: 051 341 43 40"

	ReplyScheduleFallback = "📅 **Təlim cədvəlləri:**\n\n" +
		"Təlimlər həftədə 2-3 dəfə keçirilir.\n" +
		"Həm həftə içi, həm də həftə sonu qruplarımız var.\n\n" +
		"📞 Konkret təlim cədvəli üçün: 051 341 43 40\n" +
		"📧 Email: info@dsa.az"

	ReplyBootcampStructure = "🎯 **Bootcamp Strukturu:**\n\n" +
		"DSA Academy-də bootcamplar aşağıdakı kimi təşkil olunur:\n\n" +
		"📚 **1. Data Analytics Bootcamp**\n" +
		"   • Excel ilə Data Analytics\n" +
		"   • SQL və Data Management\n" +
		"   • Tableau Business Intelligence\n" +
		"   • Power BI\n\n" +
		"🤖 **2. Machine Learning Bootcamp**\n" +
		"   • Python Programming\n" +
		"   • Machine Learning Fundamentals\n" +
		"   • Deep Learning və AI\n\n" +
		"💻 **3. Data Engineering Bootcamp**\n" +
		"   • SQL Advanced\n" +
		"   • Database Design\n" +
		"   • Big Data Technologies\n\n" +
		"⏱️ **Müddət:** Hər bootcamp 3-6 ay\n" +
		"💰 **Qiymət:** 250 AZN - 2000 AZN\n" +
		"📜 **Sertifikat:** Hər bootcamp üçün beynəlxalq sertifikat\n\n" +
		"📞 Ətraflı məlumat: 051 341 43 40"

	ReplyPriceFallback = "💰 **Qiymət məlumatları:**\n\n" +
		"Təlimlərimizin qiymətləri 250 AZN - 2000 AZN aralığındadır.\n\n" +
		"📞 Konkret təlim qiymətləri üçün: 051 341 43 40"

	ReplyNoTrainers = "Hal-hazırda təlimçilər haqqında məlumat yoxdur.\n\n" +
		"📞 Əlaqə: 051 341 43 40"

	ReplyNoGraduates = "Hal-hazırda məzunlar haqqında məlumat yoxdur.\n\n" +
		"📞 Əlaqə: 051 341 43 40"
)
