package riasec

import "strings"

// DefaultCombinations is the exam block combination reported alongside a
// recommendation until block selection is derived from the profile.
const DefaultCombinations = "A00, A01"

var majorsByCategory = map[Category][]string{
	Realistic:     {"Kỹ thuật cơ khí", "Kỹ thuật xây dựng", "Công nghệ ô tô"},
	Investigative: {"Công nghệ thông tin", "Y đa khoa", "Khoa học dữ liệu"},
	Artistic:      {"Thiết kế đồ họa", "Kiến trúc", "Truyền thông đa phương tiện"},
	Social:        {"Sư phạm", "Tâm lý học", "Điều dưỡng"},
	Enterprising:  {"Quản trị kinh doanh", "Marketing", "Luật"},
	Conventional:  {"Kế toán", "Tài chính ngân hàng", "Hệ thống thông tin quản lý"},
}

// Majors lists the suggested majors for one category.
func Majors(c Category) []string {
	return append([]string(nil), majorsByCategory[c]...)
}

// Recommend joins the suggested majors of each ranked category, strongest
// first. Majors already suggested by a higher category are skipped.
func Recommend(top []Category) string {
	seen := make(map[string]struct{})
	var picks []string
	for _, c := range top {
		for _, m := range majorsByCategory[c] {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			picks = append(picks, m)
		}
	}
	return strings.Join(picks, "; ")
}
