package countrycode

// table is the embedded code list in its published order. Aggregate rows are
// World Bank grouping codes (regions, income levels, lending categories).
var table = []Entry{
	{Code: "BD", Name: "Bangladesh", Kind: Country},
	{Code: "BE", Name: "Belgium", Kind: Country},
	{Code: "BF", Name: "Burkina Faso", Kind: Country},
	{Code: "BG", Name: "Bulgaria", Kind: Country},
	{Code: "BA", Name: "Bosnia and Herzegovina", Kind: Country},
	{Code: "BB", Name: "Barbados", Kind: Country},
	{Code: "BM", Name: "Bermuda", Kind: Country},
	{Code: "BN", Name: "Brunei Darussalam", Kind: Country},
	{Code: "BO", Name: "Bolivia", Kind: Country},
	{Code: "BH", Name: "Bahrain", Kind: Country},
	{Code: "BI", Name: "Burundi", Kind: Country},
	{Code: "BJ", Name: "Benin", Kind: Country},
	{Code: "BT", Name: "Bhutan", Kind: Country},
	{Code: "JM", Name: "Jamaica", Kind: Country},
	{Code: "BW", Name: "Botswana", Kind: Country},
	{Code: "WS", Name: "Samoa", Kind: Country},
	{Code: "BR", Name: "Brazil", Kind: Country},
	{Code: "BS", Name: "Bahamas, The", Kind: Country},
	{Code: "JG", Name: "Channel Islands", Kind: Country},
	{Code: "BY", Name: "Belarus", Kind: Country},
	{Code: "BZ", Name: "Belize", Kind: Country},
	{Code: "RU", Name: "Russian Federation", Kind: Country},
	{Code: "RW", Name: "Rwanda", Kind: Country},
	{Code: "RS", Name: "Serbia", Kind: Country},
	{Code: "TL", Name: "Timor-Leste", Kind: Country},
	{Code: "TM", Name: "Turkmenistan", Kind: Country},
	{Code: "XT", Name: "Upper middle income", Kind: Aggregate},
	{Code: "TJ", Name: "Tajikistan", Kind: Country},
	{Code: "RO", Name: "Romania", Kind: Country},
	{Code: "GW", Name: "Guinea-Bissau", Kind: Country},
	{Code: "GU", Name: "Guam", Kind: Country},
	{Code: "GT", Name: "Guatemala", Kind: Country},
	{Code: "GR", Name: "Greece", Kind: Country},
	{Code: "GQ", Name: "Equatorial Guinea", Kind: Country},
	{Code: "JP", Name: "Japan", Kind: Country},
	{Code: "GY", Name: "Guyana", Kind: Country},
	{Code: "GE", Name: "Georgia", Kind: Country},
	{Code: "GD", Name: "Grenada", Kind: Country},
	{Code: "GB", Name: "United Kingdom", Kind: Country},
	{Code: "GA", Name: "Gabon", Kind: Country},
	{Code: "SV", Name: "El Salvador", Kind: Country},
	{Code: "GN", Name: "Guinea", Kind: Country},
	{Code: "GM", Name: "Gambia, The", Kind: Country},
	{Code: "GL", Name: "Greenland", Kind: Country},
	{Code: "SA", Name: "Saudi Arabia", Kind: Country},
	{Code: "GH", Name: "Ghana", Kind: Country},
	{Code: "OM", Name: "Oman", Kind: Country},
	{Code: "TN", Name: "Tunisia", Kind: Country},
	{Code: "OE", Name: "OECD members", Kind: Aggregate},
	{Code: "UY", Name: "Uruguay", Kind: Country},
	{Code: "JO", Name: "Jordan", Kind: Country},
	{Code: "HR", Name: "Croatia", Kind: Country},
	{Code: "HT", Name: "Haiti", Kind: Country},
	{Code: "HU", Name: "Hungary", Kind: Country},
	{Code: "HK", Name: "Hong Kong SAR, China", Kind: Country},
	{Code: "HN", Name: "Honduras", Kind: Country},
	{Code: "VE", Name: "Venezuela, RB", Kind: Country},
	{Code: "PR", Name: "Puerto Rico", Kind: Country},
	{Code: "PS", Name: "West Bank and Gaza", Kind: Country},
	{Code: "PW", Name: "Palau", Kind: Country},
	{Code: "PT", Name: "Portugal", Kind: Country},
	{Code: "PY", Name: "Paraguay", Kind: Country},
	{Code: "PA", Name: "Panama", Kind: Country},
	{Code: "PF", Name: "French Polynesia", Kind: Country},
	{Code: "PG", Name: "Papua New Guinea", Kind: Country},
	{Code: "PE", Name: "Peru", Kind: Country},
	{Code: "Z4", Name: "East Asia & Pacific (all income levels)", Kind: Aggregate},
	{Code: "PK", Name: "Pakistan", Kind: Country},
	{Code: "PH", Name: "Philippines", Kind: Country},
	{Code: "Z7", Name: "Europe & Central Asia (all income levels)", Kind: Aggregate},
	{Code: "ZF", Name: "Sub-Saharan Africa (developing only)", Kind: Aggregate},
	{Code: "PL", Name: "Poland", Kind: Country},
	{Code: "SN", Name: "Senegal", Kind: Country},
	{Code: "ZM", Name: "Zambia", Kind: Country},
	{Code: "ZJ", Name: "Latin America & Caribbean (all income levels)", Kind: Aggregate},
	{Code: "EE", Name: "Estonia", Kind: Country},
	{Code: "EG", Name: "Egypt, Arab Rep.", Kind: Country},
	{Code: "ZG", Name: "Sub-Saharan Africa (all income levels)", Kind: Aggregate},
	{Code: "ZA", Name: "South Africa", Kind: Country},
	{Code: "EC", Name: "Ecuador", Kind: Country},
	{Code: "IT", Name: "Italy", Kind: Country},
	{Code: "XL", Name: "Least developed countries: UN classification", Kind: Aggregate},
	{Code: "VN", Name: "Vietnam", Kind: Country},
	{Code: "SB", Name: "Solomon Islands", Kind: Country},
	{Code: "EU", Name: "European Union", Kind: Aggregate},
	{Code: "ET", Name: "Ethiopia", Kind: Country},
	{Code: "SO", Name: "Somalia", Kind: Country},
	{Code: "ZW", Name: "Zimbabwe", Kind: Country},
	{Code: "ZQ", Name: "Middle East & North Africa (all income levels)", Kind: Aggregate},
	{Code: "ES", Name: "Spain", Kind: Country},
	{Code: "ER", Name: "Eritrea", Kind: Country},
	{Code: "ME", Name: "Montenegro", Kind: Country},
	{Code: "MD", Name: "Moldova", Kind: Country},
	{Code: "MG", Name: "Madagascar", Kind: Country},
	{Code: "MF", Name: "St. Martin (French part)", Kind: Country},
	{Code: "MA", Name: "Morocco", Kind: Country},
	{Code: "MC", Name: "Monaco", Kind: Country},
	{Code: "UZ", Name: "Uzbekistan", Kind: Country},
	{Code: "MM", Name: "Myanmar", Kind: Country},
	{Code: "ML", Name: "Mali", Kind: Country},
	{Code: "MO", Name: "Macao SAR, China", Kind: Country},
	{Code: "MN", Name: "Mongolia", Kind: Country},
	{Code: "MH", Name: "Marshall Islands", Kind: Country},
	{Code: "MK", Name: "Macedonia, FYR", Kind: Country},
	{Code: "MU", Name: "Mauritius", Kind: Country},
	{Code: "MT", Name: "Malta", Kind: Country},
	{Code: "MW", Name: "Malawi", Kind: Country},
	{Code: "MV", Name: "Maldives", Kind: Country},
	{Code: "MP", Name: "Northern Mariana Islands", Kind: Country},
	{Code: "MR", Name: "Mauritania", Kind: Country},
	{Code: "IM", Name: "Isle of Man", Kind: Country},
	{Code: "UG", Name: "Uganda", Kind: Country},
	{Code: "MY", Name: "Malaysia", Kind: Country},
	{Code: "MX", Name: "Mexico", Kind: Country},
	{Code: "IL", Name: "Israel", Kind: Country},
	{Code: "FR", Name: "France", Kind: Country},
	{Code: "1W", Name: "World", Kind: Aggregate},
	{Code: "S3", Name: "Caribbean small states", Kind: Aggregate},
	{Code: "S2", Name: "Pacific island small states", Kind: Aggregate},
	{Code: "S1", Name: "Small states", Kind: Aggregate},
	{Code: "8S", Name: "South Asia", Kind: Aggregate},
	{Code: "XS", Name: "High income: OECD", Kind: Aggregate},
	{Code: "S4", Name: "Other small states", Kind: Aggregate},
	{Code: "1A", Name: "Arab World", Kind: Aggregate},
	{Code: "FI", Name: "Finland", Kind: Country},
	{Code: "FJ", Name: "Fiji", Kind: Country},
	{Code: "FM", Name: "Micronesia, Fed. Sts.", Kind: Country},
	{Code: "FO", Name: "Faeroe Islands", Kind: Country},
	{Code: "NI", Name: "Nicaragua", Kind: Country},
	{Code: "AZ", Name: "Azerbaijan", Kind: Country},
	{Code: "NL", Name: "Netherlands", Kind: Country},
	{Code: "NO", Name: "Norway", Kind: Country},
	{Code: "NA", Name: "Namibia", Kind: Country},
	{Code: "VU", Name: "Vanuatu", Kind: Country},
	{Code: "NC", Name: "New Caledonia", Kind: Country},
	{Code: "NE", Name: "Niger", Kind: Country},
	{Code: "NG", Name: "Nigeria", Kind: Country},
	{Code: "NZ", Name: "New Zealand", Kind: Country},
	{Code: "NP", Name: "Nepal", Kind: Country},
	{Code: "XJ", Name: "Latin America & Caribbean (developing only)", Kind: Aggregate},
	{Code: "CI", Name: "Cote d'Ivoire", Kind: Country},
	{Code: "CH", Name: "Switzerland", Kind: Country},
	{Code: "CO", Name: "Colombia", Kind: Country},
	{Code: "CN", Name: "China", Kind: Country},
	{Code: "CM", Name: "Cameroon", Kind: Country},
	{Code: "CL", Name: "Chile", Kind: Country},
	{Code: "XC", Name: "Euro area", Kind: Aggregate},
	{Code: "CA", Name: "Canada", Kind: Country},
	{Code: "CG", Name: "Congo, Rep.", Kind: Country},
	{Code: "CF", Name: "Central African Republic", Kind: Country},
	{Code: "XD", Name: "High income", Kind: Aggregate},
	{Code: "CD", Name: "Congo, Dem. Rep.", Kind: Country},
	{Code: "CZ", Name: "Czech Republic", Kind: Country},
	{Code: "CY", Name: "Cyprus", Kind: Country},
	{Code: "XY", Name: "Not classified", Kind: Aggregate},
	{Code: "XR", Name: "High income: nonOECD", Kind: Aggregate},
	{Code: "CR", Name: "Costa Rica", Kind: Country},
	{Code: "XP", Name: "Middle income", Kind: Aggregate},
	{Code: "XQ", Name: "Middle East & North Africa (developing only)", Kind: Aggregate},
	{Code: "CW", Name: "Curacao", Kind: Country},
	{Code: "CV", Name: "Cape Verde", Kind: Country},
	{Code: "CU", Name: "Cuba", Kind: Country},
	{Code: "XU", Name: "North America", Kind: Aggregate},
	{Code: "SZ", Name: "Swaziland", Kind: Country},
	{Code: "SY", Name: "Syrian Arab Republic", Kind: Country},
	{Code: "SX", Name: "Sint Maarten (Dutch part)", Kind: Country},
	{Code: "KG", Name: "Kyrgyz Republic", Kind: Country},
	{Code: "KE", Name: "Kenya", Kind: Country},
	{Code: "SS", Name: "South Sudan", Kind: Country},
	{Code: "SR", Name: "Suriname", Kind: Country},
	{Code: "KI", Name: "Kiribati", Kind: Country},
	{Code: "KH", Name: "Cambodia", Kind: Country},
	{Code: "KN", Name: "St. Kitts and Nevis", Kind: Country},
	{Code: "KM", Name: "Comoros", Kind: Country},
	{Code: "ST", Name: "Sao Tome and Principe", Kind: Country},
	{Code: "SK", Name: "Slovak Republic", Kind: Country},
	{Code: "KR", Name: "Korea, Rep.", Kind: Country},
	{Code: "SI", Name: "Slovenia", Kind: Country},
	{Code: "KP", Name: "Korea, Dem. Rep.", Kind: Country},
	{Code: "KW", Name: "Kuwait", Kind: Country},
	{Code: "KV", Name: "Kosovo", Kind: Country},
	{Code: "SM", Name: "San Marino", Kind: Country},
	{Code: "SL", Name: "Sierra Leone", Kind: Country},
	{Code: "SC", Name: "Seychelles", Kind: Country},
	{Code: "KZ", Name: "Kazakhstan", Kind: Country},
	{Code: "KY", Name: "Cayman Islands", Kind: Country},
	{Code: "SG", Name: "Singapore", Kind: Country},
	{Code: "SE", Name: "Sweden", Kind: Country},
	{Code: "SD", Name: "Sudan", Kind: Country},
	{Code: "DO", Name: "Dominican Republic", Kind: Country},
	{Code: "DM", Name: "Dominica", Kind: Country},
	{Code: "DJ", Name: "Djibouti", Kind: Country},
	{Code: "DK", Name: "Denmark", Kind: Country},
	{Code: "DE", Name: "Germany", Kind: Country},
	{Code: "YE", Name: "Yemen, Rep.", Kind: Country},
	{Code: "DZ", Name: "Algeria", Kind: Country},
	{Code: "US", Name: "United States", Kind: Country},
	{Code: "XN", Name: "Lower middle income", Kind: Aggregate},
	{Code: "XO", Name: "Low & middle income", Kind: Aggregate},
	{Code: "7E", Name: "Europe & Central Asia (developing only)", Kind: Aggregate},
	{Code: "LB", Name: "Lebanon", Kind: Country},
	{Code: "LC", Name: "St. Lucia", Kind: Country},
	{Code: "LA", Name: "Lao PDR", Kind: Country},
	{Code: "TV", Name: "Tuvalu", Kind: Country},
	{Code: "TT", Name: "Trinidad and Tobago", Kind: Country},
	{Code: "XM", Name: "Low income", Kind: Aggregate},
	{Code: "TR", Name: "Turkey", Kind: Country},
	{Code: "LK", Name: "Sri Lanka", Kind: Country},
	{Code: "LI", Name: "Liechtenstein", Kind: Country},
	{Code: "LV", Name: "Latvia", Kind: Country},
	{Code: "TO", Name: "Tonga", Kind: Country},
	{Code: "LT", Name: "Lithuania", Kind: Country},
	{Code: "LU", Name: "Luxembourg", Kind: Country},
	{Code: "LR", Name: "Liberia", Kind: Country},
	{Code: "LS", Name: "Lesotho", Kind: Country},
	{Code: "TH", Name: "Thailand", Kind: Country},
	{Code: "TG", Name: "Togo", Kind: Country},
	{Code: "TD", Name: "Chad", Kind: Country},
	{Code: "TC", Name: "Turks and Caicos Islands", Kind: Country},
	{Code: "LY", Name: "Libya", Kind: Country},
	{Code: "VC", Name: "St. Vincent and the Grenadines", Kind: Country},
	{Code: "AE", Name: "United Arab Emirates", Kind: Country},
	{Code: "AD", Name: "Andorra", Kind: Country},
	{Code: "AG", Name: "Antigua and Barbuda", Kind: Country},
	{Code: "AF", Name: "Afghanistan", Kind: Country},
	{Code: "IQ", Name: "Iraq", Kind: Country},
	{Code: "VI", Name: "Virgin Islands (U.S.)", Kind: Country},
	{Code: "IS", Name: "Iceland", Kind: Country},
	{Code: "IR", Name: "Iran, Islamic Rep.", Kind: Country},
	{Code: "AM", Name: "Armenia", Kind: Country},
	{Code: "AL", Name: "Albania", Kind: Country},
	{Code: "AO", Name: "Angola", Kind: Country},
	{Code: "AS", Name: "American Samoa", Kind: Country},
	{Code: "AR", Name: "Argentina", Kind: Country},
	{Code: "AU", Name: "Australia", Kind: Country},
	{Code: "AT", Name: "Austria", Kind: Country},
	{Code: "AW", Name: "Aruba", Kind: Country},
	{Code: "IN", Name: "India", Kind: Country},
	{Code: "TZ", Name: "Tanzania", Kind: Country},
	{Code: "4E", Name: "East Asia & Pacific (developing only)", Kind: Aggregate},
	{Code: "IE", Name: "Ireland", Kind: Country},
	{Code: "ID", Name: "Indonesia", Kind: Country},
	{Code: "XE", Name: "Heavily indebted poor countries (HIPC)", Kind: Aggregate},
	{Code: "UA", Name: "Ukraine", Kind: Country},
	{Code: "QA", Name: "Qatar", Kind: Country},
	{Code: "MZ", Name: "Mozambique", Kind: Country},
}
