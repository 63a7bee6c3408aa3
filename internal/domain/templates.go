package domain

// SectorTemplate шаблон сектора для мастера первичной настройки
// Задаёт слоган по умолчанию и стартовый набор услуг
type SectorTemplate struct {
	ID              string
	Label           string
	Tagline         string
	DefaultServices []string
}

// SectorTemplates поддерживаемые секторы
var SectorTemplates = map[string]SectorTemplate{
	"barber": {
		ID:              "barber",
		Label:           "Kuaför & Berber",
		Tagline:         "Tarzınız, Ustalığımız",
		DefaultServices: []string{"Saç Kesimi", "Sakal Düzeltme", "Fön", "Boya", "Keratin"},
	},
	"dentist": {
		ID:              "dentist",
		Label:           "Diş Hekimi",
		Tagline:         "Sağlıklı Gülüşler İçin",
		DefaultServices: []string{"Genel Muayene", "Diş Temizleme", "Dolgu", "Kanal Tedavisi", "İmplant Konsültasyon"},
	},
	"psychologist": {
		ID:              "psychologist",
		Label:           "Psikolog",
		Tagline:         "İyilik Halinize Doğru",
		DefaultServices: []string{"Bireysel Terapi", "Çift Terapisi", "Çocuk & Ergen", "Kariyer Danışmanlığı", "Online Seans"},
	},
	"spa": {
		ID:              "spa",
		Label:           "Güzellik & Spa",
		Tagline:         "Kendinize Zaman Ayırın",
		DefaultServices: []string{"Klasik Masaj", "Aromaterapi", "Cilt Bakımı", "Kalıcı Makyaj", "Epilasyon"},
	},
	"nail": {
		ID:              "nail",
		Label:           "Nail Studio",
		Tagline:         "Her El Bir Sanat Eseri",
		DefaultServices: []string{"Kalıcı Oje", "Nail Art", "Manikür", "Pedikür", "Tırnak Uzatma"},
	},
	"fitness": {
		ID:              "fitness",
		Label:           "Fitness & PT",
		Tagline:         "Limitlerini Yeniden Belirle",
		DefaultServices: []string{"PT Seansı", "Beslenme Danışmanlığı", "Grup Dersi", "Vücut Analizi", "Program Hazırlama"},
	},
}
