package namedict

type seedRow struct {
	canonical string
	variants  []string
}

// Built-in equivalence groups for common Slavic given names. Each group
// mixes formal, diminutive, Cyrillic and transliterated forms; the Key
// normalization folds the Cyrillic spellings onto their transliterations.
var seedGivenNames = []seedRow{
	{"Alexander", []string{"Aleksandr", "Alexandr", "Sasha", "Shura", "Sanya", "Александр", "Саша", "Шура", "Саня"}},
	{"Alexandra", []string{"Aleksandra", "Sasha", "Александра"}},
	{"Ivan", []string{"Vanya", "John", "Иван", "Ваня"}},
	{"Mikhail", []string{"Michael", "Misha", "Михаил", "Миша"}},
	{"Yekaterina", []string{"Ekaterina", "Katya", "Catherine", "Katherine", "Екатерина", "Катя"}},
	{"Elizaveta", []string{"Liza", "Elizabeth", "Елизавета", "Лиза"}},
	{"Natalia", []string{"Natalya", "Natasha", "Наталья", "Наталия", "Наташа"}},
	{"Vladimir", []string{"Volodya", "Vova", "Владимир", "Володя", "Вова"}},
	{"Dmitry", []string{"Dmitri", "Dmitriy", "Dima", "Дмитрий", "Дима"}},
	{"Evgeny", []string{"Yevgeny", "Zhenya", "Eugene", "Евгений", "Женя"}},
	{"Evgenia", []string{"Yevgenia", "Zhenya", "Евгения"}},
	{"Grigory", []string{"Grigori", "Grisha", "Gregory", "Григорий", "Гриша"}},
	{"Yosef", []string{"Joseph", "Iosif", "Osip", "Yossi", "Иосиф", "Осип"}},
	{"Nikolai", []string{"Nikolay", "Kolya", "Nicholas", "Николай", "Коля"}},
	{"Pyotr", []string{"Petr", "Petya", "Peter", "Пётр", "Петр", "Петя"}},
	{"Pavel", []string{"Pasha", "Paul", "Павел", "Паша"}},
	{"Anna", []string{"Anya", "Ann", "Hannah", "Анна", "Аня"}},
	{"Maria", []string{"Marya", "Masha", "Mary", "Мария", "Маша"}},
	{"Olga", []string{"Olya", "Ольга", "Оля"}},
	{"Tatiana", []string{"Tatyana", "Tanya", "Татьяна", "Таня"}},
	{"Sergei", []string{"Sergey", "Seryozha", "Сергей", "Серёжа"}},
	{"Boris", []string{"Borya", "Борис", "Боря"}},
	{"Leonid", []string{"Lyonya", "Леонид", "Лёня"}},
	{"Moshe", []string{"Moses", "Moisei", "Моисей"}},
	{"Avraham", []string{"Abraham", "Abram", "Авраам", "Абрам"}},
	{"Yakov", []string{"Jacob", "Yasha", "Яков", "Яша"}},
	{"Anatoly", []string{"Anatoli", "Tolya", "Анатолий", "Толя"}},
	{"Svetlana", []string{"Sveta", "Светлана", "Света"}},
	{"Lyudmila", []string{"Lyuda", "Люда", "Людмила"}},
	{"Galina", []string{"Galya", "Галина", "Галя"}},
}

// Built-in surname groups: common spelling families that plain
// transliteration does not unify.
var seedSurnames = []seedRow{
	{"Kogan", []string{"Kagan", "Cogan", "Коган", "Каган"}},
	{"Levin", []string{"Lewin", "Levine", "Левин"}},
	{"Rabinovich", []string{"Rabinowitz", "Rabinovitch", "Рабинович"}},
	{"Kuznetsov", []string{"Kusnezow", "Кузнецов"}},
	{"Schwartz", []string{"Shvarts", "Szwarc", "Шварц"}},
	{"Goldberg", []string{"Goldberg", "Гольдберг"}},
	{"Shapiro", []string{"Szapiro", "Schapiro", "Шапиро"}},
	{"Gurevich", []string{"Gurewicz", "Horowitz", "Gurevitch", "Гуревич"}},
}
