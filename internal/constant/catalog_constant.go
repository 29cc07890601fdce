package constant

import "careervr-be/internal/dto"

const (
	VRJobsFile      = "vr_jobs.json"
	SubmissionsFile = "submissions.json"
)

// DefaultVRJobs seeds the catalog when no file exists yet.
var DefaultVRJobs = []dto.VRJob{
	{
		Id:          "job_1",
		Title:       "Phi công",
		VideoId:     "W0ixQ59o-iI",
		Description: "Trải nghiệm buồng lái máy bay và quy trình cất cánh.",
		Icon:        "✈️",
	},
	{
		Id:          "job_2",
		Title:       "Bác sĩ phẫu thuật",
		VideoId:     "L_H6gA2Fq8A",
		Description: "Quan sát ca phẫu thuật tim trong môi trường phòng mổ vô trùng.",
		Icon:        "👨‍⚕️",
	},
	{
		Id:          "job_3",
		Title:       "Kiến trúc sư",
		VideoId:     "7J0i7Q3kZ8c",
		Description: "Tham quan công trình xây dựng và quy trình thiết kế nhà ở.",
		Icon:        "🏗️",
	},
	{
		Id:          "job_4",
		Title:       "Lập trình viên",
		VideoId:     "M2K7_Gfq8sA",
		Description: "Một ngày làm việc tại công ty công nghệ lớn.",
		Icon:        "💻",
	},
	{
		Id:          "job_5",
		Title:       "Luật sư",
		VideoId:     "M2K7_Gfq8sA",
		Description: "Tham gia phiên tòa giả định và tìm hiểu quy trình tranh tụng, tư vấn pháp lý.",
		Icon:        "⚖️",
	},
}
