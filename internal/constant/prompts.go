package constant

const (
	ChatMessageRoleUser   = "user"
	ChatMessageRoleSystem = "system"

	// SystemPrompt frames every model call. The model answers strictly from
	// backend-provided facts, in Azerbaijani.
	SystemPrompt = "Sən DSA.az üçün rəsmi təlim chatbotusan. " +
		"Cavabları yalnız backend-dən gələn məlumatlara əsasən yaz. " +
		"Əgər cavab tapılmazsa, \"Bu məlumatı əməkdaşlarımızdan öyrənə bilərik\" de. " +
		"Dil: Azərbaycan dili."

	// NormalizePromptTemplate fixes spelling/grammar without changing meaning.
	// Expects the raw user text as the single format argument.
	NormalizePromptTemplate = "Bu yazını qrammatik və semantik baxımdan düzəlt, mənanı dəyişmə. " +
		"Yalnız düzəldilmiş mətni ver, heç bir əlavə izahat verme.\n\n" +
		"Mətn: %s"

	// IntentPromptTemplate asks for exactly one of the six intent labels.
	IntentPromptTemplate = "Aşağıdakı mesajın məqsədini seç. Yalnız bir söz cavab ver.\n\n" +
		"Seçimlər:\n" +
		"- contact: İstifadəçi əlaqə saxlamaq, zəng etmək, müraciət etmək istəyir\n" +
		"- consult: İstifadəçi təlim öyrənmək, kurs seçmək, məsləhət almaq istəyir\n" +
		"- query: İstifadəçinin konkret sualı var (qiymət, müddət, tələb və s.)\n" +
		"- trainer: İstifadəçi təlimçilər haqqında soruşur\n" +
		"- greeting: İstifadəçi salam verir, salamlaşır\n" +
		"- unclear: Məqsəd aydın deyil\n\n" +
		"Mesaj: %s\n\n" +
		"Cavab (yalnız bir söz):"

	// FormatPromptTemplate turns raw knowledge-base facts into a short natural
	// reply. Arguments: system prompt, user question, raw data.
	FormatPromptTemplate = "%s\n\n" +
		"Bu məlumat əsasında istifadəçiyə təbii və aydın cavab yaz. " +
		"Cavab qısa və konkret olsun.\n\n" +
		"İstifadəçinin sualı: %s\n\n" +
		"Məlumat: %s\n\n" +
		"Cavab:"
)
