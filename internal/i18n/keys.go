package i18n

const (
	MainMenu      Key = "main_menu"
	AskPassword   Key = "ask_password"
	WrongPassword Key = "wrong_password"
	AccessGranted Key = "access_granted"
	AuthRequired  Key = "auth_required"
	GenericError  Key = "generic_error"
	LoadError     Key = "load_error"
	InvalidPage   Key = "invalid_page"
	NoData        Key = "no_data"

	BtnMyLists    Key = "btn_my_lists"
	BtnNewList    Key = "btn_new_list"
	BtnSettings   Key = "btn_settings"
	BtnBack       Key = "btn_back"
	BtnMainMenu   Key = "btn_main_menu"
	BtnCancel     Key = "btn_cancel"
	BtnBackToList Key = "btn_back_to_list"
	BtnToLists    Key = "btn_to_lists"

	ListsTitle        Key = "lists_title"
	ListsEmpty        Key = "lists_empty"
	AskListName       Key = "ask_list_name"
	ListCreated       Key = "list_created"
	ListHeader        Key = "list_header"
	ListNoWords       Key = "list_no_words"
	AskRename         Key = "ask_rename"
	ListRenamed       Key = "list_renamed"
	ConfirmDeleteList Key = "confirm_delete_list"
	ListDeleted       Key = "list_deleted"
	ErrEmptyListName  Key = "err_empty_list_name"
	ErrListNameLong   Key = "err_list_name_long"
	ErrListNotFound   Key = "err_list_not_found"

	BtnAddWords      Key = "btn_add_words"
	BtnLearn         Key = "btn_learn"
	BtnRename        Key = "btn_rename"
	BtnDeleteList    Key = "btn_delete_list"
	BtnConfirmDelete Key = "btn_confirm_delete"
	BtnEditWords     Key = "btn_edit_words"

	AskWord         Key = "ask_word"
	AskMeaning      Key = "ask_meaning"
	WordSaved       Key = "word_saved"
	WordsTitle      Key = "words_title"
	WordDetail      Key = "word_detail"
	AskEditWord     Key = "ask_edit_word"
	AskEditMeaning  Key = "ask_edit_meaning"
	WordUpdated     Key = "word_updated"
	WordDeleted     Key = "word_deleted"
	ErrEmptyWord    Key = "err_empty_word"
	ErrWordTooLong  Key = "err_word_too_long"
	ErrWordNotFound Key = "err_word_not_found"

	BtnEditWord    Key = "btn_edit_word"
	BtnEditMeaning Key = "btn_edit_meaning"
	BtnDeleteWord  Key = "btn_delete_word"

	ChooseMode     Key = "choose_mode"
	BtnModeWM      Key = "btn_mode_wm"
	BtnModeMW      Key = "btn_mode_mw"
	NoWordsToLearn Key = "no_words_to_learn"
	QuizQuestion   Key = "quiz_question"
	QuizCorrect    Key = "quiz_correct"
	QuizWrong      Key = "quiz_wrong"
	QuizAnswer     Key = "quiz_answer"
	QuizCompleted  Key = "quiz_completed"
	QuizNotActive  Key = "quiz_not_active"
	QuizStopped    Key = "quiz_stopped"

	BtnShowAnswer Key = "btn_show_answer"
	BtnSkip       Key = "btn_skip"
	BtnNext       Key = "btn_next"
	BtnRetry      Key = "btn_retry"
	BtnStop       Key = "btn_stop"
	BtnLearnAgain Key = "btn_learn_again"

	SettingsTitle     Key = "settings_title"
	ReminderOn        Key = "reminder_on"
	ReminderOff       Key = "reminder_off"
	BtnLanguage       Key = "btn_language"
	BtnReminderOn     Key = "btn_reminder_on"
	BtnReminderOff    Key = "btn_reminder_off"
	BtnReminderTime   Key = "btn_reminder_time"
	ChooseLanguage    Key = "choose_language"
	LanguageChanged   Key = "language_changed"
	AskReminderTime   Key = "ask_reminder_time"
	ErrInvalidTime    Key = "err_invalid_time"
	ErrInvalidLang    Key = "err_invalid_lang"
	ReminderSaved     Key = "reminder_saved"
	ReminderDisabled  Key = "reminder_disabled"
	BtnBackToSettings Key = "btn_back_to_settings"

	DateToday     Key = "date_today"
	DateYesterday Key = "date_yesterday"
)
