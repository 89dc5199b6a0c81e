package i18n

import "github.com/sadopc/taskflow/internal/prefs"

var catalogs = map[prefs.Locale]map[string]string{
	prefs.LocaleTR: tr,
	prefs.LocaleEN: en,
}

var tr = map[string]string{
	// General
	"Projects":      "Projeler",
	"Notifications": "Bildirimler",
	"Settings":      "Ayarlar",
	"Profile":       "Profil",
	"SignOut":       "Çıkış Yap",
	"Save":          "Kaydet",
	"Cancel":        "İptal",
	"Delete":        "Sil",
	"Edit":          "Düzenle",
	"Back":          "Geri",

	// Settings
	"AppSettings":        "Uygulama Ayarları",
	"DarkMode":           "Koyu Tema",
	"Theme":              "Tema",
	"ThemeSystem":        "Sistem",
	"ThemeLight":         "Açık",
	"ThemeDark":          "Koyu",
	"Language":           "Dil Ayarları",
	"Turkish":            "Türkçe",
	"English":            "İngilizce",
	"Help":               "Yardım",
	"About":              "Hakkında",
	"ProfileInformation": "Profil Bilgileri",
	"DisplayName":        "Görünen Ad",

	// Notifications
	"NoNotificationsMessage": "Henüz bildiriminiz bulunmuyor.",
	"NotificationSettings":   "Bildirim Ayarları",
	"NotifyAll":              "Tüm bildirimler",
	"NotifyMentions":         "Yalnızca bahsedilmeler",
	"NotifyNone":             "Kapalı",
	"SoundRingVibrate":       "Zil ve titreşim",
	"SoundVibrateOnly":       "Yalnızca titreşim",
	"Sound":                  "Ses",

	// Auth
	"Login":       "Giriş Yap",
	"SignUp":      "Kayıt Ol",
	"Email":       "E-posta",
	"Password":    "Şifre",
	"SigningIn":   "Giriş yapılıyor...",
	"SigningUp":   "Hesap oluşturuluyor...",
	"NoAccount":   "Hesabınız yok mu? Kayıt olun",
	"HaveAccount": "Zaten hesabınız var mı? Giriş yapın",
	"Welcome":     "TaskFlow'a hoş geldiniz",

	// Project
	"MyProjects":     "Projelerim",
	"ProjectDetails": "Proje Detayları",
	"NewProject":     "Yeni Proje",
	"Title":          "Başlık",
	"Description":    "Açıklama",
	"Search":         "Ara",
	"Progress":       "İlerleme",
	"Tasks":          "Görevler",
	"Board":          "Pano",
	"ToDo":           "Yapılacak",
	"Done":           "Tamamlandı",
	"DueDate":        "Bitiş Tarihi",
	"NoProjects":     "Proje bulunamadı.",
	"Export":         "Dışa Aktar",

	// Task
	"TaskDetails":  "Görev Detayları",
	"Assignee":     "Atanan",
	"Comments":     "Yorumlar",
	"AddComment":   "Yorum ekle...",
	"NoComments":   "Henüz yorum yok.",
	"Unassigned":   "Atanmamış",
	"MarkComplete": "Tamamlandı olarak işaretle",

	// Analytics
	"Analytics":      "Analitik",
	"CompletionRate": "Tamamlanma Oranı",
	"Completed":      "Tamamlanan",
	"InProgress":     "Devam Eden",
	"Pending":        "Bekleyen",
	"Timeline":       "Proje Süresi",
	"Days":           "gün",
	"WeeklyActivity": "Haftalık Aktivite",

	// Filters
	"Sort":                  "Sırala",
	"Filter":                "Filtrele",
	"FilterOptionAll":       "Tümü",
	"FilterOptionActive":    "Aktif",
	"FilterOptionCompleted": "Tamamlanan",
	"SortOptionDate":        "Tarih",
	"SortOptionName":        "İsim",
	"SortOptionProgress":    "İlerleme",

	// Auth errors
	"AuthEmptyCredentials": "E-posta ve şifre boş olamaz",
	"AuthPasswordTooShort": "Şifre en az 6 karakter olmalı",
	"AuthInvalidEmail":     "Geçersiz e-posta adresi",
}

var en = map[string]string{
	// General
	"Projects":      "Projects",
	"Notifications": "Notifications",
	"Settings":      "Settings",
	"Profile":       "Profile",
	"SignOut":       "Sign Out",
	"Save":          "Save",
	"Cancel":        "Cancel",
	"Delete":        "Delete",
	"Edit":          "Edit",
	"Back":          "Back",

	// Settings
	"AppSettings":        "App Settings",
	"DarkMode":           "Dark Mode",
	"Theme":              "Theme",
	"ThemeSystem":        "System",
	"ThemeLight":         "Light",
	"ThemeDark":          "Dark",
	"Language":           "Language",
	"Turkish":            "Turkish",
	"English":            "English",
	"Help":               "Help",
	"About":              "About",
	"ProfileInformation": "Profile Information",
	"DisplayName":        "Display Name",

	// Notifications
	"NoNotificationsMessage": "You have no notifications yet.",
	"NotificationSettings":   "Notification Settings",
	"NotifyAll":              "All notifications",
	"NotifyMentions":         "Mentions only",
	"NotifyNone":             "Off",
	"SoundRingVibrate":       "Ring and vibrate",
	"SoundVibrateOnly":       "Vibrate only",
	"Sound":                  "Sound",

	// Auth
	"Login":       "Log In",
	"SignUp":      "Sign Up",
	"Email":       "Email",
	"Password":    "Password",
	"SigningIn":   "Signing in...",
	"SigningUp":   "Creating account...",
	"NoAccount":   "No account? Sign up",
	"HaveAccount": "Already have an account? Log in",
	"Welcome":     "Welcome to TaskFlow",

	// Project
	"MyProjects":     "My Projects",
	"ProjectDetails": "Project Details",
	"NewProject":     "New Project",
	"Title":          "Title",
	"Description":    "Description",
	"Search":         "Search",
	"Progress":       "Progress",
	"Tasks":          "Tasks",
	"Board":          "Board",
	"ToDo":           "To Do",
	"Done":           "Done",
	"DueDate":        "Due Date",
	"NoProjects":     "No projects found.",
	"Export":         "Export",

	// Task
	"TaskDetails":  "Task Details",
	"Assignee":     "Assignee",
	"Comments":     "Comments",
	"AddComment":   "Add a comment...",
	"NoComments":   "No comments yet.",
	"Unassigned":   "Unassigned",
	"MarkComplete": "Mark as complete",

	// Analytics
	"Analytics":      "Analytics",
	"CompletionRate": "Completion Rate",
	"Completed":      "Completed",
	"InProgress":     "In Progress",
	"Pending":        "Pending",
	"Timeline":       "Project Timeline",
	"Days":           "days",
	"WeeklyActivity": "Weekly Activity",

	// Filters
	"Sort":                  "Sort",
	"Filter":                "Filter",
	"FilterOptionAll":       "All",
	"FilterOptionActive":    "Active",
	"FilterOptionCompleted": "Completed",
	"SortOptionDate":        "Date",
	"SortOptionName":        "Name",
	"SortOptionProgress":    "Progress",

	// Auth errors
	"AuthEmptyCredentials": "Email and password must not be empty",
	"AuthPasswordTooShort": "Password must be at least 6 characters",
	"AuthInvalidEmail":     "Invalid email address",
}
