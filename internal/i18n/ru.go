package i18n

var russian = map[Key]string{
	MainMenu:      "🏠 Главное меню\n\nВыберите действие:",
	AskPassword:   "Привет! Это закрытый бот. Отправь пароль, чтобы продолжить:",
	WrongPassword: "Неверный пароль",
	AccessGranted: "✅ Доступ разрешён!",
	AuthRequired:  "Сначала отправь пароль",
	GenericError:  "Произошла ошибка. Попробуйте позже.",
	LoadError:     "Ошибка при загрузке данных",
	InvalidPage:   "Неверная страница",
	NoData:        "Нет данных",

	BtnMyLists:    "📚 Мои списки",
	BtnNewList:    "➕ Новый список",
	BtnSettings:   "⚙️ Настройки",
	BtnBack:       "🏠 Назад",
	BtnMainMenu:   "🏠 Главное меню",
	BtnCancel:     "❌ Отменить",
	BtnBackToList: "◀️ К списку",
	BtnToLists:    "◀️ К спискам",

	ListsTitle:        "📚 Твои списки слов:",
	ListsEmpty:        "У тебя пока нет списков слов",
	AskListName:       "Отправь название нового списка",
	ListCreated:       "✅ Список «%s» создан!",
	ListHeader:        "📖 %s\n🗓 Создан: %s\n📝 Слов: %d",
	ListNoWords:       "Слов пока нет. Добавь несколько!",
	AskRename:         "Отправь новое название для «%s»",
	ListRenamed:       "✅ Список переименован в «%s»",
	ConfirmDeleteList: "Удалить «%s» и все его слова (%d)?",
	ListDeleted:       "🗑 Список «%s» удалён",
	ErrEmptyListName:  "Название списка не может быть пустым",
	ErrListNameLong:   "Название слишком длинное (максимум %d символов)",
	ErrListNotFound:   "Список не найден",

	BtnAddWords:      "➕ Добавить слова",
	BtnLearn:         "🧠 Учить",
	BtnRename:        "✏️ Переименовать",
	BtnDeleteList:    "🗑 Удалить список",
	BtnConfirmDelete: "🗑 Да, удалить",
	BtnEditWords:     "📝 Редактировать слова",

	AskWord:         "Отправь слово",
	AskMeaning:      "Теперь отправь перевод слова «%s»",
	WordSaved:       "✅ Сохранено! Слов в списке: %d\n\nМожешь отправить следующее слово или вернуться в /start",
	WordsTitle:      "Выбери слово для редактирования:",
	WordDetail:      "📝 %s\n🔄 %s",
	AskEditWord:     "Отправь новое слово (сейчас: %s)",
	AskEditMeaning:  "Отправь новый перевод (сейчас: %s)",
	WordUpdated:     "✅ Слово обновлено",
	WordDeleted:     "🗑 Слово удалено",
	ErrEmptyWord:    "Слово и перевод не могут быть пустыми",
	ErrWordTooLong:  "Текст слишком длинный (максимум %d символов)",
	ErrWordNotFound: "Слово не найдено",

	BtnEditWord:    "✏️ Изменить слово",
	BtnEditMeaning: "✏️ Изменить перевод",
	BtnDeleteWord:  "🗑 Удалить слово",

	ChooseMode:     "Как учить «%s»?",
	BtnModeWM:      "Слово → Перевод",
	BtnModeMW:      "Перевод → Слово",
	NoWordsToLearn: "В этом списке пока нет слов. Сначала добавь слова!",
	QuizQuestion:   "🧠 %d/%d · %d%%\n\n❓ %s\n\n✍️ Напиши ответ:",
	QuizCorrect:    "✅ Верно!\n\n%s — %s",
	QuizWrong:      "❌ Неверно. Попробуй ещё раз или покажи ответ.",
	QuizAnswer:     "💡 %s — %s",
	QuizCompleted:  "🎉 Отлично! Ты прошёл все слова (%d) из «%s».",
	QuizNotActive:  "Нет активного теста. Начни его из списка.",
	QuizStopped:    "Тест остановлен",

	BtnShowAnswer: "💡 Показать ответ",
	BtnSkip:       "⏭ Пропустить",
	BtnNext:       "➡️ Дальше",
	BtnRetry:      "🔁 Ещё раз",
	BtnStop:       "⏹ Стоп",
	BtnLearnAgain: "🔁 Учить заново",

	SettingsTitle:     "⚙️ Настройки\n\n🌐 Язык: %s\n⏰ Ежедневное напоминание: %s",
	ReminderOn:        "включено, %s",
	ReminderOff:       "выключено",
	BtnLanguage:       "🌐 Язык",
	BtnReminderOn:     "🔔 Включить напоминание",
	BtnReminderOff:    "🔕 Выключить напоминание",
	BtnReminderTime:   "⏰ Время напоминания",
	ChooseLanguage:    "Выбери язык:",
	LanguageChanged:   "✅ Язык: %s",
	AskReminderTime:   "Отправь время напоминания в формате ЧЧ:ММ (24 часа), например 09:30",
	ErrInvalidTime:    "Неверное время. Используй ЧЧ:ММ, например 09:30",
	ErrInvalidLang:    "Язык не поддерживается",
	ReminderSaved:     "⏰ Напоминание установлено на %s",
	ReminderDisabled:  "🔕 Напоминание выключено",
	BtnBackToSettings: "◀️ Настройки",

	DateToday:     "Сегодня",
	DateYesterday: "Вчера",
}
