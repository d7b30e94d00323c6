package config

// SystemPrompt is the fixed system instruction sent with every analysis
// request.
const SystemPrompt = "You are an expert HR recruiter analyzing a CV against job requirements. " +
	"Be objective and thorough. Respond with a single valid JSON object and no other text."

// DefaultPromptTemplate is the analysis prompt rendered per CV. It is a
// text/template; the pipeline supplies JobDescription, CVText and the rubric
// weight percentages.
const DefaultPromptTemplate = `Analyze this candidate's CV against the job requirements and provide a detailed analysis in JSON format.

Job Description:
{{.JobDescription}}

CV Content:
{{.CVText}}

Follow these strict scoring guidelines:

Essential Skills Match ({{.EssentialSkillsPct}}% of total score):
- Compare required skills in job description with CV
- Award points for exact matches and relevant equivalents
- Consider both technical and soft skills
- Factor in skill proficiency levels when mentioned

Experience Relevance ({{.ExperiencePct}}% of total score):
- Years of relevant experience
- Industry relevance
- Project/role similarities
- Leadership/management requirements if applicable

Education Fit ({{.EducationPct}}% of total score):
- Required degree/certification matches
- Field of study relevance
- Additional relevant certifications
- Academic achievements if relevant

Additional Qualifications ({{.AdditionalPct}}% of total score):
- Extra relevant certifications
- Industry recognition
- Publications/patents if applicable
- Relevant achievements

Provide a JSON response with these fields:
{
    "match_score": <calculated score between 0-1>,
    "score_breakdown": {
        "essential_skills": <score 0-1>,
        "experience": <score 0-1>,
        "education": <score 0-1>,
        "additional": <score 0-1>
    },
    "strengths": [
        "specific strength 1",
        "specific strength 2"
    ],
    "weaknesses": [
        "specific weakness 1",
        "specific weakness 2"
    ],
    "key_skills": [
        "matched skill 1",
        "matched skill 2"
    ],
    "recommendation": "Detailed recommendation explaining score and key factors"
}

Important:
- Be specific about strengths and weaknesses
- List actual skills found in the CV that match job requirements
- Explain your scoring in the recommendation
- Ensure all scores are justified by evidence from CV and job description
- Only return valid JSON, no other text`

// SummarizePromptTemplate asks the model for a structured summary of a job
// description.
const SummarizePromptTemplate = `Please provide a concise summary of this job description, highlighting the key requirements and responsibilities:

{{.JobDescription}}

Format the response as a JSON object with the following structure:
{
    "summary": "A brief summary of the job",
    "key_requirements": ["List of main requirements"],
    "key_responsibilities": ["List of main responsibilities"]
}`
