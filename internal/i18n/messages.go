package i18n

// Messages holds every user-facing string on the site for one language.
// Both catalogs below populate the full struct, so a missing translation
// fails to compile rather than falling back silently at runtime.
type Messages struct {
	Nav      NavMessages      `json:"nav"`
	Hero     HeroMessages     `json:"hero"`
	Services ServicesMessages `json:"services"`
	Process  ProcessMessages  `json:"process"`
	About    AboutMessages    `json:"about"`
	Projects ProjectsMessages `json:"projects"`
	Blog     BlogMessages     `json:"blog"`
	Contact  ContactMessages  `json:"contact"`
	Footer   FooterMessages   `json:"footer"`
	Form     FormMessages     `json:"form"`
	Errors   ErrorMessages    `json:"errors"`
}

type NavMessages struct {
	Home     string `json:"home"`
	Services string `json:"services"`
	About    string `json:"about"`
	Projects string `json:"projects"`
	Blog     string `json:"blog"`
	Contact  string `json:"contact"`
}

type HeroMessages struct {
	Badge       string `json:"badge"`
	Title       string `json:"title"`
	TitleAccent string `json:"title_accent"`
	Subtitle    string `json:"subtitle"`
	CTAPrimary  string `json:"cta_primary"`
	CTAProjects string `json:"cta_projects"`
}

type ServicesMessages struct {
	Title    string           `json:"title"`
	Subtitle string           `json:"subtitle"`
	Items    []ServiceMessage `json:"items"`
}

type ServiceMessage struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ProcessMessages struct {
	Title    string          `json:"title"`
	Subtitle string          `json:"subtitle"`
	Steps    []ProcessStep   `json:"steps"`
	CTA      ProcessCTAOffer `json:"cta"`
}

type ProcessStep struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ProcessCTAOffer struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Button   string `json:"button"`
}

type AboutMessages struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Body     string `json:"body"`
}

type ProjectsMessages struct {
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	ViewDetails  string `json:"view_details"`
	Consultation string `json:"consultation"`
	// ConsultationTemplate is the WhatsApp message body; %s is the project title.
	ConsultationTemplate string `json:"consultation_template"`
	Empty                string `json:"empty"`
}

type BlogMessages struct {
	Title             string   `json:"title"`
	Subtitle          string   `json:"subtitle"`
	SearchPlaceholder string   `json:"search_placeholder"`
	Categories        []string `json:"categories"`
	ReadMore          string   `json:"read_more"`
	NoResults         string   `json:"no_results"`
	All               string   `json:"all"`
}

type ContactMessages struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Info     string `json:"info"`
	CallUs   string `json:"call_us"`
	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email"`
	Address  string `json:"address"`
}

type FooterMessages struct {
	Tagline string `json:"tagline"`
	Rights  string `json:"rights"`
}

type FormMessages struct {
	FullName      string `json:"full_name"`
	PhoneNumber   string `json:"phone_number"`
	Email         string `json:"email"`
	Message       string `json:"message"`
	Send          string `json:"send"`
	Sent          string `json:"sent"`
	SendFailed    string `json:"send_failed"`
	Password      string `json:"password"`
	Login         string `json:"login"`
	Logout        string `json:"logout"`
	ProjectSaved  string `json:"project_saved"`
	BlogPublished string `json:"blog_published"`
}

type ErrorMessages struct {
	WrongPassword    string `json:"wrong_password"`
	ConnectionFailed string `json:"connection_failed"`
	RequiredField    string `json:"required_field"`
	AtLeastOneImage  string `json:"at_least_one_image"`
	UploadFailed     string `json:"upload_failed"`
	DeleteFailed     string `json:"delete_failed"`
	NotFound         string `json:"not_found"`
	TooManyAttempts  string `json:"too_many_attempts"`
}

var catalogs = map[Lang]Messages{Arabic: arabic, English: english}

// T returns the message catalog for the language. Unknown languages fall
// back to Arabic, the site default.
func T(lang Lang) Messages {
	if m, ok := catalogs[lang]; ok {
		return m
	}
	return arabic
}

var arabic = Messages{
	Nav: NavMessages{
		Home:     "الرئيسية",
		Services: "خدماتنا",
		About:    "معلومات عنا",
		Projects: "المشاريع",
		Blog:     "المدونة",
		Contact:  "تواصل معنا",
	},
	Hero: HeroMessages{
		Badge:       "لمسة ديكور للمقاولات والتشطيبات",
		Title:       "نصنع منازل",
		TitleAccent: "تليق بكم",
		Subtitle:    "من التصميم إلى التسليم، نحول مساحتك إلى تحفة فنية بأجود الخامات وأمهر الأيادي.",
		CTAPrimary:  "اطلب استشارة مجانية",
		CTAProjects: "شاهد أعمالنا",
	},
	Services: ServicesMessages{
		Title:    "خدماتنا",
		Subtitle: "حلول متكاملة للديكور والتشطيب تغطي كل زاوية في منزلك.",
		Items: []ServiceMessage{
			{Title: "الديكورات الداخلية", Description: "تصميم وتنفيذ ديكورات داخلية عصرية تعكس ذوقك الخاص."},
			{Title: "الديكورات الخارجية", Description: "واجهات ومداخل تمنح منزلك حضوراً مميزاً من أول نظرة."},
			{Title: "تنسيق الحدائق", Description: "مساحات خضراء وجلسات خارجية مصممة للاستمتاع في كل فصول السنة."},
			{Title: "خزائن الملابس", Description: "غرف ملابس وخزائن مدمجة تستغل كل سنتيمتر بذكاء وأناقة."},
		},
	},
	Process: ProcessMessages{
		Title:    "كيف نحول حلمك إلى واقع؟",
		Subtitle: "أربع خطوات واضحة تفصل بينك وبين منزل أحلامك.",
		Steps: []ProcessStep{
			{Title: "اختر تصميمك", Description: "هل أعجبك تصميم على Pinterest أو Instagram؟ شاركنا الصورة فقط."},
			{Title: "التخطيط الهندسي", Description: "يقوم مهندسونا بمطابقة التصميم مع مساحة منزلك الفعلية."},
			{Title: "التنفيذ المتقن", Description: "نبدأ العمل بأجود الخامات الوطنية والعالمية لضمان الدقة."},
			{Title: "البيت المتألق", Description: "نسلمك منزلك كما حلمت به تماماً، متألقاً وبأعلى جودة."},
		},
		CTA: ProcessCTAOffer{
			Title:    "جاهز تبدأ مشروعك؟",
			Subtitle: "تواصل معنا اليوم واحصل على استشارة مجانية من فريقنا الهندسي.",
			Button:   "ابدأ الآن عبر واتساب",
		},
	},
	About: AboutMessages{
		Title:    "معلومات عنا",
		Subtitle: "خبرة تمتد لسنوات في عالم الديكور والتشطيبات.",
		Body:     "لمسة ديكور شركة متخصصة في المقاولات والتشطيبات الداخلية والخارجية. نؤمن أن المنزل ليس جدراناً وأسقفاً، بل مساحة تحكي قصة أصحابها. فريقنا من المهندسين والفنيين يرافقك من الفكرة الأولى حتى تسليم المفتاح.",
	},
	Projects: ProjectsMessages{
		Title:                "المشاريع",
		Subtitle:             "نماذج من أعمالنا المنفذة بإتقان.",
		ViewDetails:          "عرض التفاصيل",
		Consultation:         "اطلب استشارة",
		ConsultationTemplate: "أريد استشارة بخصوص مشروع: %s",
		Empty:                "لا توجد مشاريع حالياً",
	},
	Blog: BlogMessages{
		Title:             "المدونة",
		Subtitle:          "استكشف أحدث المقالات، النصائح، والتحديثات من فريق عملنا.",
		SearchPlaceholder: "ابحث عن مقال...",
		Categories:        []string{"الكل", "تقنية", "تصميم", "أخبار"},
		ReadMore:          "اقرأ المزيد",
		NoResults:         "لم يتم العثور على مقالات تطابق بحثك.",
		All:               "الكل",
	},
	Contact: ContactMessages{
		Title:    "تواصل معنا",
		Subtitle: "نحن هنا للإجابة على استفساراتكم وتحويل أفكاركم إلى واقع. أرسل لنا رسالة وسنقوم بالرد عليك في أقرب وقت ممكن.",
		Info:     "معلومات الاتصال",
		CallUs:   "اتصل بنا",
		WhatsApp: "واتساب",
		Email:    "البريد الإلكتروني",
		Address:  "العنوان",
	},
	Footer: FooterMessages{
		Tagline: "نصمم وننفذ بحب، لنترك في كل منزل لمسة.",
		Rights:  "جميع الحقوق محفوظة",
	},
	Form: FormMessages{
		FullName:      "الاسم الكامل",
		PhoneNumber:   "رقم الجوال",
		Email:         "البريد الإلكتروني (اختياري)",
		Message:       "رسالتك",
		Send:          "إرسال",
		Sent:          "تم إرسال رسالتك بنجاح، سنتواصل معك قريباً.",
		SendFailed:    "تعذر إرسال الرسالة، يرجى المحاولة مرة أخرى.",
		Password:      "أدخل كلمة المرور",
		Login:         "دخول",
		Logout:        "تسجيل الخروج",
		ProjectSaved:  "تم رفع المشروع بنجاح",
		BlogPublished: "تم نشر المقال بنجاح",
	},
	Errors: ErrorMessages{
		WrongPassword:    "كلمة المرور غير صحيحة!",
		ConnectionFailed: "فشل الاتصال بقاعدة البيانات",
		RequiredField:    "هذا الحقل مطلوب",
		AtLeastOneImage:  "يرجى اختيار صورة واحدة على الأقل",
		UploadFailed:     "حدث خطأ أثناء الرفع",
		DeleteFailed:     "خطأ أثناء الحذف",
		NotFound:         "العنصر غير موجود",
		TooManyAttempts:  "محاولات كثيرة، حاول لاحقاً",
	},
}

var english = Messages{
	Nav: NavMessages{
		Home:     "Home",
		Services: "Our Services",
		About:    "About Us",
		Projects: "Projects",
		Blog:     "Blog",
		Contact:  "Contact Us",
	},
	Hero: HeroMessages{
		Badge:       "Lamsa Decor Contracting & Finishing",
		Title:       "We build homes",
		TitleAccent: "worthy of you",
		Subtitle:    "From design to handover, we turn your space into a work of art with the finest materials and the most skilled hands.",
		CTAPrimary:  "Request a Free Consultation",
		CTAProjects: "See Our Work",
	},
	Services: ServicesMessages{
		Title:    "Our Services",
		Subtitle: "End-to-end decor and finishing solutions covering every corner of your home.",
		Items: []ServiceMessage{
			{Title: "Interior Design", Description: "Modern interior decor designed and built to reflect your personal taste."},
			{Title: "Exterior Design", Description: "Facades and entrances that give your home presence at first sight."},
			{Title: "Landscaping", Description: "Green spaces and outdoor seating designed for year-round enjoyment."},
			{Title: "Walk-in Closets", Description: "Dressing rooms and built-in wardrobes that use every centimeter smartly."},
		},
	},
	Process: ProcessMessages{
		Title:    "How do we turn your dream into reality?",
		Subtitle: "Four clear steps between you and the home of your dreams.",
		Steps: []ProcessStep{
			{Title: "Pick Your Design", Description: "Liked a design on Pinterest or Instagram? Just share the photo with us."},
			{Title: "Engineering Plan", Description: "Our engineers fit the design to the actual space of your home."},
			{Title: "Precise Execution", Description: "We build with the finest local and international materials."},
			{Title: "A Shining Home", Description: "We hand over your home exactly as you dreamed it, at the highest quality."},
		},
		CTA: ProcessCTAOffer{
			Title:    "Ready to start your project?",
			Subtitle: "Reach out today and get a free consultation from our engineering team.",
			Button:   "Start Now on WhatsApp",
		},
	},
	About: AboutMessages{
		Title:    "About Us",
		Subtitle: "Years of experience in the world of decor and finishing.",
		Body:     "Lamsa Decor is a contracting company specialized in interior and exterior finishing. We believe a home is not walls and ceilings but a space that tells its owners' story. Our engineers and craftsmen accompany you from the first idea to key handover.",
	},
	Projects: ProjectsMessages{
		Title:                "Projects",
		Subtitle:             "A selection of our finished work.",
		ViewDetails:          "View Details",
		Consultation:         "Request Consultation",
		ConsultationTemplate: "I would like a consultation about the project: %s",
		Empty:                "No projects yet",
	},
	Blog: BlogMessages{
		Title:             "Our Blog",
		Subtitle:          "Explore the latest articles, tips, and updates from our team.",
		SearchPlaceholder: "Search for an article...",
		Categories:        []string{"All", "Tech", "Design", "News"},
		ReadMore:          "Read More",
		NoResults:         "No articles found matching your search.",
		All:               "All",
	},
	Contact: ContactMessages{
		Title:    "Contact Us",
		Subtitle: "We are here to answer your inquiries and turn your ideas into reality. Send us a message and we will get back to you as soon as possible.",
		Info:     "Contact Information",
		CallUs:   "Call Us",
		WhatsApp: "WhatsApp",
		Email:    "Email",
		Address:  "Address",
	},
	Footer: FooterMessages{
		Tagline: "Designed and built with care, leaving a touch in every home.",
		Rights:  "All rights reserved",
	},
	Form: FormMessages{
		FullName:      "Full Name",
		PhoneNumber:   "Phone Number",
		Email:         "Email (optional)",
		Message:       "Your Message",
		Send:          "Send",
		Sent:          "Your message was sent successfully. We will be in touch soon.",
		SendFailed:    "Could not send your message, please try again.",
		Password:      "Enter password",
		Login:         "Log In",
		Logout:        "Log Out",
		ProjectSaved:  "Project uploaded successfully",
		BlogPublished: "Article published successfully",
	},
	Errors: ErrorMessages{
		WrongPassword:    "Incorrect password!",
		ConnectionFailed: "Failed to connect to the database",
		RequiredField:    "This field is required",
		AtLeastOneImage:  "Please select at least one image",
		UploadFailed:     "An error occurred during upload",
		DeleteFailed:     "Error while deleting",
		NotFound:         "Item not found",
		TooManyAttempts:  "Too many attempts, try again later",
	},
}
