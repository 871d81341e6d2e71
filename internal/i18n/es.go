package i18n

var spanish = map[Key]string{
	MainMenu:      "🏠 Menú principal\n\nElige una acción:",
	AskPassword:   "¡Hola! Este bot es privado. Envía la contraseña para continuar:",
	WrongPassword: "Contraseña incorrecta",
	AccessGranted: "✅ ¡Acceso concedido!",
	AuthRequired:  "Primero envía la contraseña",
	GenericError:  "Algo salió mal. Inténtalo de nuevo más tarde.",
	LoadError:     "No se pudieron cargar los datos",
	InvalidPage:   "Página no válida",
	NoData:        "No hay nada aquí",

	BtnMyLists:    "📚 Mis listas",
	BtnNewList:    "➕ Nueva lista",
	BtnSettings:   "⚙️ Ajustes",
	BtnBack:       "🏠 Atrás",
	BtnMainMenu:   "🏠 Menú principal",
	BtnCancel:     "❌ Cancelar",
	BtnBackToList: "◀️ A la lista",
	BtnToLists:    "◀️ A las listas",

	ListsTitle:        "📚 Tus listas de palabras:",
	ListsEmpty:        "Todavía no tienes listas de palabras",
	AskListName:       "Envía un nombre para la nueva lista",
	ListCreated:       "✅ ¡Lista \"%s\" creada!",
	ListHeader:        "📖 %s\n🗓 Creada: %s\n📝 Palabras: %d",
	ListNoWords:       "Todavía no hay palabras. ¡Añade algunas!",
	AskRename:         "Envía un nuevo nombre para \"%s\"",
	ListRenamed:       "✅ Lista renombrada a \"%s\"",
	ConfirmDeleteList: "¿Eliminar \"%s\" y sus %d palabras?",
	ListDeleted:       "🗑 Lista \"%s\" eliminada",
	ErrEmptyListName:  "El nombre de la lista no puede estar vacío",
	ErrListNameLong:   "El nombre es demasiado largo (máximo %d caracteres)",
	ErrListNotFound:   "Lista no encontrada",

	BtnAddWords:      "➕ Añadir palabras",
	BtnLearn:         "🧠 Aprender",
	BtnRename:        "✏️ Renombrar",
	BtnDeleteList:    "🗑 Eliminar lista",
	BtnConfirmDelete: "🗑 Sí, eliminar",
	BtnEditWords:     "📝 Editar palabras",

	AskWord:         "Envía una palabra",
	AskMeaning:      "Ahora envía el significado de \"%s\"",
	WordSaved:       "✅ ¡Guardado! Palabras en la lista: %d\n\nEnvía la siguiente palabra o vuelve con /start",
	WordsTitle:      "Elige una palabra para editar:",
	WordDetail:      "📝 %s\n🔄 %s",
	AskEditWord:     "Envía la nueva palabra (actual: %s)",
	AskEditMeaning:  "Envía el nuevo significado (actual: %s)",
	WordUpdated:     "✅ Palabra actualizada",
	WordDeleted:     "🗑 Palabra eliminada",
	ErrEmptyWord:    "La palabra y el significado no pueden estar vacíos",
	ErrWordTooLong:  "El texto es demasiado largo (máximo %d caracteres)",
	ErrWordNotFound: "Palabra no encontrada",

	BtnEditWord:    "✏️ Editar palabra",
	BtnEditMeaning: "✏️ Editar significado",
	BtnDeleteWord:  "🗑 Eliminar palabra",

	ChooseMode:     "¿Cómo quieres aprender \"%s\"?",
	BtnModeWM:      "Palabra → Significado",
	BtnModeMW:      "Significado → Palabra",
	NoWordsToLearn: "Esta lista todavía no tiene palabras. ¡Añade algunas primero!",
	QuizQuestion:   "🧠 %d/%d · %d%%\n\n❓ %s\n\n✍️ Escribe tu respuesta:",
	QuizCorrect:    "✅ ¡Correcto!\n\n%s — %s",
	QuizWrong:      "❌ Incorrecto. Inténtalo de nuevo o muestra la respuesta.",
	QuizAnswer:     "💡 %s — %s",
	QuizCompleted:  "🎉 ¡Bien hecho! Repasaste las %d palabras de \"%s\".",
	QuizNotActive:  "No hay ningún cuestionario activo. Empieza uno desde una lista.",
	QuizStopped:    "Cuestionario detenido",

	BtnShowAnswer: "💡 Mostrar respuesta",
	BtnSkip:       "⏭ Saltar",
	BtnNext:       "➡️ Siguiente",
	BtnRetry:      "🔁 Reintentar",
	BtnStop:       "⏹ Detener",
	BtnLearnAgain: "🔁 Aprender de nuevo",

	SettingsTitle:     "⚙️ Ajustes\n\n🌐 Idioma: %s\n⏰ Recordatorio diario: %s",
	ReminderOn:        "activado, %s",
	ReminderOff:       "desactivado",
	BtnLanguage:       "🌐 Idioma",
	BtnReminderOn:     "🔔 Activar recordatorio",
	BtnReminderOff:    "🔕 Desactivar recordatorio",
	BtnReminderTime:   "⏰ Hora del recordatorio",
	ChooseLanguage:    "Elige un idioma:",
	LanguageChanged:   "✅ Idioma: %s",
	AskReminderTime:   "Envía la hora del recordatorio como HH:MM (24 horas), por ejemplo 09:30",
	ErrInvalidTime:    "Hora no válida. Usa HH:MM, por ejemplo 09:30",
	ErrInvalidLang:    "Idioma no compatible",
	ReminderSaved:     "⏰ Recordatorio programado para las %s",
	ReminderDisabled:  "🔕 Recordatorio desactivado",
	BtnBackToSettings: "◀️ Ajustes",

	DateToday:     "Hoy",
	DateYesterday: "Ayer",
}
