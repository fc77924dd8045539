package i18n

// Catalog keys are grouped by page. Keep the two maps in the same order
// so a missing translation is easy to spot in review.

var messagesKO = map[string]string{
	"site.name": "브리검영 대학교 하와이 한국 동문회",

	"nav.home":      "홈",
	"nav.about":     "소개",
	"nav.events":    "행사",
	"nav.news":      "소식",
	"nav.gallery":   "갤러리",
	"nav.directory": "동문 명부",
	"nav.give":      "후원",
	"nav.admin":     "관리자",
	"nav.profile":   "프로필",
	"nav.login":     "로그인",
	"nav.logout":    "로그아웃",
	"nav.back":      "뒤로",

	"footer.tagline": "알로하 정신을 한국에서 이어갑니다.",

	"home.heroTitle":      "알로하, 한국 동문 여러분!",
	"home.heroSubtitle":   "브리검영 대학교 하와이 한국 동문회에 오신 것을 환영합니다.",
	"home.joinCTA":        "동문회 가입하기",
	"home.upcomingEvents": "다가오는 행사",
	"home.allEvents":      "모든 행사 보기",
	"home.latestNews":     "최근 소식",
	"home.allNews":        "모든 소식 보기",

	"contact.title":    "연락처",
	"contact.subtitle": "궁금한 점이 있으면 언제든지 연락해 주세요.",
	"contact.email":    "이메일",
	"contact.sns":      "SNS",

	"about.title":      "동문회 소개",
	"about.intro":      "브리검영 대학교 하와이 한국 동문회는 한국에 거주하는 졸업생들의 모임입니다.",
	"about.mission":    "동문 간의 우정을 이어가고, 후배들을 돕고, 학교와의 인연을 지켜갑니다.",
	"about.leadership": "임원진",
	"about.noLeaders":  "등록된 임원이 없습니다.",

	"events.title":           "행사",
	"events.none":            "예정된 행사가 없습니다.",
	"events.rsvp":            "참석 신청",
	"events.cancelRSVP":      "참석 취소",
	"events.attending":       "참석 신청이 완료되었습니다.",
	"events.attendees":       "참석자",
	"events.signInToRSVP":    "참석 신청은 로그인 후 가능합니다.",
	"events.completeProfile": "참석 신청을 하려면 먼저 프로필을 작성해 주세요.",

	"news.title":    "소식",
	"news.none":     "등록된 소식이 없습니다.",
	"news.readMore": "더 보기",

	"gallery.title": "갤러리",
	"gallery.all":   "전체",
	"gallery.none":  "등록된 사진이 없습니다.",

	"give.title":    "후원하기",
	"give.intro":    "여러분의 후원은 후배들의 학업과 동문회 활동에 큰 힘이 됩니다.",
	"give.howTitle": "후원 방법",
	"give.how":      "아래 계좌로 후원하실 수 있습니다. 후원금은 장학금과 행사 운영에 사용됩니다.",
	"give.contact":  "후원 관련 문의는 임원진에게 연락해 주세요.",

	"login.title":  "로그인",
	"login.intro":  "동문회 회원은 Google 계정으로 로그인합니다.",
	"login.google": "Google 계정으로 로그인",
	"login.denied": "로그인이 취소되었습니다.",
	"login.failed": "로그인에 실패했습니다. 다시 시도해 주세요.",

	"directory.title":             "동문 명부",
	"directory.search":            "검색",
	"directory.searchPlaceholder": "이름, 회사, 졸업 연도로 검색",
	"directory.none":              "검색 결과가 없습니다.",

	"profile.title":          "내 프로필",
	"profile.editTitle":      "프로필 수정",
	"profile.setupTitle":     "프로필 작성",
	"profile.setupIntro":     "동문 명부에 표시될 정보를 입력해 주세요.",
	"profile.edit":           "프로필 수정",
	"profile.name":           "이름",
	"profile.email":          "이메일",
	"profile.phone":          "전화번호",
	"profile.company":        "회사",
	"profile.position":       "직책",
	"profile.graduationYear": "졸업 연도",
	"profile.linkedIn":       "LinkedIn",
	"profile.photo":          "프로필 사진",

	"admin.title":             "관리자",
	"admin.events":            "행사 관리",
	"admin.news":              "소식 관리",
	"admin.gallery":           "갤러리 관리",
	"admin.leadership":        "임원진 관리",
	"admin.members":           "회원 관리",
	"admin.newEvent":          "새 행사",
	"admin.editEvent":         "행사 수정",
	"admin.attendees":         "참석자 명단",
	"admin.noAttendees":       "참석 신청자가 없습니다.",
	"admin.rsvpQuestions":     "참석 신청 질문",
	"admin.rsvpQuestionsHint": "한 줄에 하나씩 입력하세요.",
	"admin.newNews":           "새 소식",
	"admin.editNews":          "소식 수정",
	"admin.summary":           "요약",
	"admin.externalLink":      "외부 링크",
	"admin.altText":           "대체 텍스트",
	"admin.category":          "분류",
	"admin.upload":            "업로드",
	"admin.addLeader":         "임원 추가",
	"admin.order":             "순서",
	"admin.role":              "권한",
	"admin.ownRole":           "자신의 권한은 변경할 수 없습니다.",
	"admin.memberNotFound":    "해당 회원을 찾을 수 없습니다.",

	"form.save":        "저장",
	"form.edit":        "수정",
	"form.delete":      "삭제",
	"form.required":    "필수 항목을 입력해 주세요.",
	"form.title":       "제목",
	"form.date":        "날짜",
	"form.time":        "시간",
	"form.location":    "장소",
	"form.description": "설명",
	"form.image":       "이미지",
	"form.errRequired": "%s을(를) 입력해 주세요.",
	"form.errEmail":    "%s이(가) 올바른 이메일 주소가 아닙니다.",
	"form.errPhone":    "%s이(가) 올바른 전화번호가 아닙니다.",
	"form.errTooLong":  "%s은(는) %s자 이내로 입력해 주세요.",
	"form.errURL":      "%s이(가) 올바른 URL이 아닙니다.",
	"form.errDate":     "%s은(는) YYYY-MM-DD 형식이어야 합니다.",
	"form.errInvalid":  "%s이(가) 올바르지 않습니다.",

	"error.title":         "오류",
	"error.generic":       "오류가 발생했습니다. 잠시 후 다시 시도해 주세요.",
	"error.notFoundTitle": "페이지를 찾을 수 없습니다",
	"error.notFound":      "요청하신 페이지가 존재하지 않습니다.",
	"error.imageType":     "허용되지 않는 파일 형식입니다. (JPEG, PNG, WebP만 가능)",
	"error.imageSize":     "파일 크기가 제한을 초과합니다.",
	"error.imageRequired": "이미지 파일을 선택해 주세요.",
}

var messagesEN = map[string]string{
	"site.name": "BYUH Alumni Korea Chapter",

	"nav.home":      "Home",
	"nav.about":     "About",
	"nav.events":    "Events",
	"nav.news":      "News",
	"nav.gallery":   "Gallery",
	"nav.directory": "Directory",
	"nav.give":      "Give",
	"nav.admin":     "Admin",
	"nav.profile":   "Profile",
	"nav.login":     "Sign in",
	"nav.logout":    "Sign out",
	"nav.back":      "Back",

	"footer.tagline": "Carrying the aloha spirit forward in Korea.",

	"home.heroTitle":      "Aloha, Korea alumni!",
	"home.heroSubtitle":   "Welcome to the BYU–Hawaii Korea alumni chapter.",
	"home.joinCTA":        "Join the chapter",
	"home.upcomingEvents": "Upcoming events",
	"home.allEvents":      "All events",
	"home.latestNews":     "Latest news",
	"home.allNews":        "All news",

	"contact.title":    "Contact",
	"contact.subtitle": "Questions? We would love to hear from you.",
	"contact.email":    "Email",
	"contact.sns":      "Social",

	"about.title":      "About the chapter",
	"about.intro":      "The BYU–Hawaii Korea alumni chapter brings together graduates living in Korea.",
	"about.mission":    "We keep friendships alive, support current students, and stay connected to the university.",
	"about.leadership": "Leadership",
	"about.noLeaders":  "No leaders listed yet.",

	"events.title":           "Events",
	"events.none":            "No upcoming events.",
	"events.rsvp":            "RSVP",
	"events.cancelRSVP":      "Cancel RSVP",
	"events.attending":       "You are signed up for this event.",
	"events.attendees":       "Attendees",
	"events.signInToRSVP":    "Sign in to RSVP.",
	"events.completeProfile": "Complete your profile to RSVP.",

	"news.title":    "News",
	"news.none":     "No news yet.",
	"news.readMore": "Read more",

	"gallery.title": "Gallery",
	"gallery.all":   "All",
	"gallery.none":  "No photos yet.",

	"give.title":    "Give",
	"give.intro":    "Your gifts support current students and chapter activities.",
	"give.howTitle": "How to give",
	"give.how":      "You can give through the account below. Gifts fund scholarships and chapter events.",
	"give.contact":  "For questions about giving, please reach out to the chapter leadership.",

	"login.title":  "Sign in",
	"login.intro":  "Chapter members sign in with their Google account.",
	"login.google": "Sign in with Google",
	"login.denied": "Sign-in was cancelled.",
	"login.failed": "Sign-in failed. Please try again.",

	"directory.title":             "Member directory",
	"directory.search":            "Search",
	"directory.searchPlaceholder": "Search by name, company, or graduation year",
	"directory.none":              "No members found.",

	"profile.title":          "My profile",
	"profile.editTitle":      "Edit profile",
	"profile.setupTitle":     "Set up your profile",
	"profile.setupIntro":     "Tell us what to show in the member directory.",
	"profile.edit":           "Edit profile",
	"profile.name":           "Name",
	"profile.email":          "Email",
	"profile.phone":          "Phone",
	"profile.company":        "Company",
	"profile.position":       "Position",
	"profile.graduationYear": "Graduation year",
	"profile.linkedIn":       "LinkedIn",
	"profile.photo":          "Profile photo",

	"admin.title":             "Admin",
	"admin.events":            "Manage events",
	"admin.news":              "Manage news",
	"admin.gallery":           "Manage gallery",
	"admin.leadership":        "Manage leadership",
	"admin.members":           "Manage members",
	"admin.newEvent":          "New event",
	"admin.editEvent":         "Edit event",
	"admin.attendees":         "Attendee list",
	"admin.noAttendees":       "No one has signed up yet.",
	"admin.rsvpQuestions":     "RSVP questions",
	"admin.rsvpQuestionsHint": "One question per line.",
	"admin.newNews":           "New post",
	"admin.editNews":          "Edit post",
	"admin.summary":           "Summary",
	"admin.externalLink":      "External link",
	"admin.altText":           "Alt text",
	"admin.category":          "Category",
	"admin.upload":            "Upload",
	"admin.addLeader":         "Add leader",
	"admin.order":             "Order",
	"admin.role":              "Role",
	"admin.ownRole":           "You cannot change your own role.",
	"admin.memberNotFound":    "That member could not be found.",

	"form.save":        "Save",
	"form.edit":        "Edit",
	"form.delete":      "Delete",
	"form.required":    "Please fill in the required fields.",
	"form.title":       "Title",
	"form.date":        "Date",
	"form.time":        "Time",
	"form.location":    "Location",
	"form.description": "Description",
	"form.image":       "Image",
	"form.errRequired": "%s is required.",
	"form.errEmail":    "%s must be a valid email address.",
	"form.errPhone":    "%s must be a valid phone number.",
	"form.errTooLong":  "%s must be at most %s characters.",
	"form.errURL":      "%s must be a valid URL.",
	"form.errDate":     "%s must be a date in YYYY-MM-DD format.",
	"form.errInvalid":  "%s is invalid.",

	"error.title":         "Error",
	"error.generic":       "Something went wrong. Please try again.",
	"error.notFoundTitle": "Page not found",
	"error.notFound":      "The page you requested does not exist.",
	"error.imageType":     "File type not allowed (JPEG, PNG, or WebP only).",
	"error.imageSize":     "File exceeds the size limit.",
	"error.imageRequired": "Please choose an image file.",
}
