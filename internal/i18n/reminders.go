package i18n

import "memorizer/internal/domain"

var months = map[domain.Language][12]string{
	domain.LanguageEnglish: {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	domain.LanguageTurkish: {"Oca", "Şub", "Mar", "Nis", "May", "Haz", "Tem", "Ağu", "Eyl", "Eki", "Kas", "Ara"},
	domain.LanguageRussian: {"янв", "фев", "мар", "апр", "мая", "июн", "июл", "авг", "сен", "окт", "ноя", "дек"},
	domain.LanguageSpanish: {"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"},
}

var reminders = map[domain.Language][]string{
	domain.LanguageEnglish: {
		"Don't forget to memorize your words today!",
		"Time for your daily vocabulary practice!",
		"Your words are waiting for you!",
		"Keep your learning streak alive!",
		"Ready to expand your vocabulary?",
		"Small steps, big progress!",
		"Consistency is the key to success!",
	},
	domain.LanguageTurkish: {
		"Bugünkü kelimelerini ezberlemeyi unutma!",
		"Günlük kelime pratiği zamanı!",
		"Kelimelerin seni bekliyor!",
		"Öğrenme serini canlı tut!",
		"Kelime dağarcığını genişletmeye hazır mısın?",
		"Küçük adımlar, büyük ilerleme!",
		"Tutarlılık başarının anahtarı!",
	},
	domain.LanguageRussian: {
		"Не забудьте выучить сегодняшние слова!",
		"Время для ежедневной практики словаря!",
		"Ваши слова ждут вас!",
		"Поддерживайте свою серию обучения!",
		"Готовы расширить свой словарный запас?",
		"Маленькие шаги, большой прогресс!",
		"Постоянство - ключ к успеху!",
	},
	domain.LanguageSpanish: {
		"¡No olvides memorizar tus palabras de hoy!",
		"¡Hora de tu práctica diaria de vocabulario!",
		"¡Tus palabras te están esperando!",
		"¡Mantén viva tu racha de aprendizaje!",
		"¿Listo para expandir tu vocabulario?",
		"¡Pasos pequeños, gran progreso!",
		"¡La consistencia es la clave del éxito!",
	},
}
