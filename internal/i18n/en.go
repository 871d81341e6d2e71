package i18n

var english = map[Key]string{
	MainMenu:      "🏠 Main menu\n\nChoose an action:",
	AskPassword:   "Hi! This bot is private. Send the password to continue:",
	WrongPassword: "Wrong password",
	AccessGranted: "✅ Access granted!",
	AuthRequired:  "Send the password first",
	GenericError:  "Something went wrong. Please try again later.",
	LoadError:     "Failed to load data",
	InvalidPage:   "Invalid page",
	NoData:        "Nothing here",

	BtnMyLists:    "📚 My lists",
	BtnNewList:    "➕ New list",
	BtnSettings:   "⚙️ Settings",
	BtnBack:       "🏠 Back",
	BtnMainMenu:   "🏠 Main menu",
	BtnCancel:     "❌ Cancel",
	BtnBackToList: "◀️ To the list",
	BtnToLists:    "◀️ To lists",

	ListsTitle:        "📚 Your word lists:",
	ListsEmpty:        "You don't have any word lists yet",
	AskListName:       "Send a name for the new list",
	ListCreated:       "✅ List \"%s\" created!",
	ListHeader:        "📖 %s\n🗓 Created: %s\n📝 Words: %d",
	ListNoWords:       "No words yet. Add some!",
	AskRename:         "Send a new name for \"%s\"",
	ListRenamed:       "✅ List renamed to \"%s\"",
	ConfirmDeleteList: "Delete \"%s\" and all of its %d words?",
	ListDeleted:       "🗑 List \"%s\" deleted",
	ErrEmptyListName:  "List name cannot be empty",
	ErrListNameLong:   "List name is too long (max %d characters)",
	ErrListNotFound:   "List not found",

	BtnAddWords:      "➕ Add words",
	BtnLearn:         "🧠 Learn",
	BtnRename:        "✏️ Rename",
	BtnDeleteList:    "🗑 Delete list",
	BtnConfirmDelete: "🗑 Yes, delete",
	BtnEditWords:     "📝 Edit words",

	AskWord:         "Send a word",
	AskMeaning:      "Now send the meaning of \"%s\"",
	WordSaved:       "✅ Saved! Words in the list: %d\n\nSend the next word or go back with /start",
	WordsTitle:      "Choose a word to edit:",
	WordDetail:      "📝 %s\n🔄 %s",
	AskEditWord:     "Send the new word (current: %s)",
	AskEditMeaning:  "Send the new meaning (current: %s)",
	WordUpdated:     "✅ Word updated",
	WordDeleted:     "🗑 Word deleted",
	ErrEmptyWord:    "Word and meaning cannot be empty",
	ErrWordTooLong:  "Text is too long (max %d characters)",
	ErrWordNotFound: "Word not found",

	BtnEditWord:    "✏️ Edit word",
	BtnEditMeaning: "✏️ Edit meaning",
	BtnDeleteWord:  "🗑 Delete word",

	ChooseMode:     "How do you want to learn \"%s\"?",
	BtnModeWM:      "Word → Meaning",
	BtnModeMW:      "Meaning → Word",
	NoWordsToLearn: "This list has no words yet. Add some words first!",
	QuizQuestion:   "🧠 %d/%d · %d%%\n\n❓ %s\n\n✍️ Type your answer:",
	QuizCorrect:    "✅ Correct!\n\n%s — %s",
	QuizWrong:      "❌ Wrong. Try again or show the answer.",
	QuizAnswer:     "💡 %s — %s",
	QuizCompleted:  "🎉 Well done! You went through all %d words of \"%s\".",
	QuizNotActive:  "No active quiz. Start one from a list.",
	QuizStopped:    "Quiz stopped",

	BtnShowAnswer: "💡 Show answer",
	BtnSkip:       "⏭ Skip",
	BtnNext:       "➡️ Next",
	BtnRetry:      "🔁 Retry",
	BtnStop:       "⏹ Stop",
	BtnLearnAgain: "🔁 Learn again",

	SettingsTitle:     "⚙️ Settings\n\n🌐 Language: %s\n⏰ Daily reminder: %s",
	ReminderOn:        "on, %s",
	ReminderOff:       "off",
	BtnLanguage:       "🌐 Language",
	BtnReminderOn:     "🔔 Turn reminder on",
	BtnReminderOff:    "🔕 Turn reminder off",
	BtnReminderTime:   "⏰ Reminder time",
	ChooseLanguage:    "Choose a language:",
	LanguageChanged:   "✅ Language: %s",
	AskReminderTime:   "Send the reminder time as HH:MM (24-hour), for example 09:30",
	ErrInvalidTime:    "Invalid time. Use HH:MM, for example 09:30",
	ErrInvalidLang:    "Unsupported language",
	ReminderSaved:     "⏰ Reminder set for %s",
	ReminderDisabled:  "🔕 Reminder turned off",
	BtnBackToSettings: "◀️ Settings",

	DateToday:     "Today",
	DateYesterday: "Yesterday",
}
