package i18n

var turkish = map[Key]string{
	MainMenu:      "🏠 Ana menü\n\nBir işlem seçin:",
	AskPassword:   "Merhaba! Bu bot özeldir. Devam etmek için şifreyi gönderin:",
	WrongPassword: "Yanlış şifre",
	AccessGranted: "✅ Erişim verildi!",
	AuthRequired:  "Önce şifreyi gönderin",
	GenericError:  "Bir hata oluştu. Lütfen daha sonra tekrar deneyin.",
	LoadError:     "Veriler yüklenemedi",
	InvalidPage:   "Geçersiz sayfa",
	NoData:        "Burada bir şey yok",

	BtnMyLists:    "📚 Listelerim",
	BtnNewList:    "➕ Yeni liste",
	BtnSettings:   "⚙️ Ayarlar",
	BtnBack:       "🏠 Geri",
	BtnMainMenu:   "🏠 Ana menü",
	BtnCancel:     "❌ İptal",
	BtnBackToList: "◀️ Listeye dön",
	BtnToLists:    "◀️ Listelere",

	ListsTitle:        "📚 Kelime listelerin:",
	ListsEmpty:        "Henüz hiç kelime listen yok",
	AskListName:       "Yeni liste için bir ad gönder",
	ListCreated:       "✅ \"%s\" listesi oluşturuldu!",
	ListHeader:        "📖 %s\n🗓 Oluşturulma: %s\n📝 Kelime: %d",
	ListNoWords:       "Henüz kelime yok. Biraz ekle!",
	AskRename:         "\"%s\" için yeni bir ad gönder",
	ListRenamed:       "✅ Liste \"%s\" olarak yeniden adlandırıldı",
	ConfirmDeleteList: "\"%s\" ve içindeki %d kelime silinsin mi?",
	ListDeleted:       "🗑 \"%s\" listesi silindi",
	ErrEmptyListName:  "Liste adı boş olamaz",
	ErrListNameLong:   "Liste adı çok uzun (en fazla %d karakter)",
	ErrListNotFound:   "Liste bulunamadı",

	BtnAddWords:      "➕ Kelime ekle",
	BtnLearn:         "🧠 Öğren",
	BtnRename:        "✏️ Yeniden adlandır",
	BtnDeleteList:    "🗑 Listeyi sil",
	BtnConfirmDelete: "🗑 Evet, sil",
	BtnEditWords:     "📝 Kelimeleri düzenle",

	AskWord:         "Bir kelime gönder",
	AskMeaning:      "Şimdi \"%s\" kelimesinin anlamını gönder",
	WordSaved:       "✅ Kaydedildi! Listedeki kelime: %d\n\nSonraki kelimeyi gönder ya da /start ile geri dön",
	WordsTitle:      "Düzenlemek için bir kelime seç:",
	WordDetail:      "📝 %s\n🔄 %s",
	AskEditWord:     "Yeni kelimeyi gönder (şu an: %s)",
	AskEditMeaning:  "Yeni anlamı gönder (şu an: %s)",
	WordUpdated:     "✅ Kelime güncellendi",
	WordDeleted:     "🗑 Kelime silindi",
	ErrEmptyWord:    "Kelime ve anlam boş olamaz",
	ErrWordTooLong:  "Metin çok uzun (en fazla %d karakter)",
	ErrWordNotFound: "Kelime bulunamadı",

	BtnEditWord:    "✏️ Kelimeyi düzenle",
	BtnEditMeaning: "✏️ Anlamı düzenle",
	BtnDeleteWord:  "🗑 Kelimeyi sil",

	ChooseMode:     "\"%s\" listesini nasıl öğrenmek istersin?",
	BtnModeWM:      "Kelime → Anlam",
	BtnModeMW:      "Anlam → Kelime",
	NoWordsToLearn: "Bu listede henüz kelime yok. Önce kelime ekle!",
	QuizQuestion:   "🧠 %d/%d · %%%d\n\n❓ %s\n\n✍️ Cevabını yaz:",
	QuizCorrect:    "✅ Doğru!\n\n%s — %s",
	QuizWrong:      "❌ Yanlış. Tekrar dene ya da cevabı göster.",
	QuizAnswer:     "💡 %s — %s",
	QuizCompleted:  "🎉 Tebrikler! \"%[2]s\" listesindeki %[1]d kelimenin hepsini tamamladın.",
	QuizNotActive:  "Aktif bir test yok. Bir listeden başlat.",
	QuizStopped:    "Test durduruldu",

	BtnShowAnswer: "💡 Cevabı göster",
	BtnSkip:       "⏭ Atla",
	BtnNext:       "➡️ Sonraki",
	BtnRetry:      "🔁 Tekrar dene",
	BtnStop:       "⏹ Durdur",
	BtnLearnAgain: "🔁 Tekrar öğren",

	SettingsTitle:     "⚙️ Ayarlar\n\n🌐 Dil: %s\n⏰ Günlük hatırlatıcı: %s",
	ReminderOn:        "açık, %s",
	ReminderOff:       "kapalı",
	BtnLanguage:       "🌐 Dil",
	BtnReminderOn:     "🔔 Hatırlatıcıyı aç",
	BtnReminderOff:    "🔕 Hatırlatıcıyı kapat",
	BtnReminderTime:   "⏰ Hatırlatma saati",
	ChooseLanguage:    "Bir dil seçin:",
	LanguageChanged:   "✅ Dil: %s",
	AskReminderTime:   "Hatırlatma saatini SS:DD (24 saat) biçiminde gönder, örneğin 09:30",
	ErrInvalidTime:    "Geçersiz saat. SS:DD kullan, örneğin 09:30",
	ErrInvalidLang:    "Desteklenmeyen dil",
	ReminderSaved:     "⏰ Hatırlatıcı %s için ayarlandı",
	ReminderDisabled:  "🔕 Hatırlatıcı kapatıldı",
	BtnBackToSettings: "◀️ Ayarlar",

	DateToday:     "Bugün",
	DateYesterday: "Dün",
}
